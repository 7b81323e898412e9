package service

import (
	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
)

//go:generate mockery --name LinkRepository
//go:generate mockery --name Generator

// LinkRepository определяет методы для работы с хранилищем ссылок
type LinkRepository interface {
	// IsCodeUnique возвращает true, если код ещё не занят
	IsCodeUnique(code model.Code) bool
	// CreateLink сохраняет новую ссылку
	// Возвращает ошибку, если код уже занят
	CreateLink(link model.Link) error
}

// Generator вычисляет короткий код по владельцу, целевому URL и соли
type Generator interface {
	GenerateCode(owner uuid.UUID, target string, salt string) model.Code
}
