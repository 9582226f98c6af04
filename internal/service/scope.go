package service

// ResolveScope выбирает email для "моих" выборок.
// По умолчанию доверяет параметру запроса; пустой параметр заменяется email из токена.
// В строгом режиме параметр, отличный от email из токена, отклоняется.
func ResolveScope(requested, identity string, strict bool) (string, error) {
	if requested == "" {
		return identity, nil
	}
	if strict && requested != identity {
		return "", ErrForbidden
	}
	return requested, nil
}
