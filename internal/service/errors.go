package service

import "errors"

var (
	// ErrNotFound запись по id не найдена
	ErrNotFound = errors.New("not found")
	// ErrForbidden запрошенный email не совпадает с email из токена (строгий режим)
	ErrForbidden = errors.New("forbidden")
)
