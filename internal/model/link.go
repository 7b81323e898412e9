package model

import (
	"time"

	"github.com/google/uuid"
)

// Code короткий идентификатор ссылки, ключ хранилища
type Code string

func (c Code) String() string {
	return string(c)
}

// Link описывает короткую ссылку вместе с её счётчиками.
// Значение неизменяемое: любое изменение создаёт копию через With*-методы
// и целиком заменяет запись в хранилище.
type Link struct {
	ID             Code
	Owner          uuid.UUID
	Target         string
	CreatedAt      time.Time
	ExpiresAt      time.Time
	MaxClicks      int
	Clicks         int
	Active         bool
	// InactiveReason заполняется, когда ссылку выключила попытка открытия
	InactiveReason InactiveReason
}

// InactiveReason причина, по которой ссылка стала неактивной
type InactiveReason int

const (
	InactiveNone InactiveReason = iota
	InactiveExpired
	InactiveLimitReached
)

// WithClicks возвращает копию ссылки с новым значением счётчика кликов
func (l Link) WithClicks(clicks int) Link {
	l.Clicks = clicks
	return l
}

// WithActive возвращает копию ссылки с новым флагом активности
func (l Link) WithActive(active bool) Link {
	l.Active = active
	return l
}

// Deactivate возвращает выключенную копию ссылки с указанием причины
func (l Link) Deactivate(reason InactiveReason) Link {
	l.Active = false
	l.InactiveReason = reason
	return l
}

// Reactivate возвращает включённую копию ссылки без причины выключения
func (l Link) Reactivate() Link {
	l.Active = true
	l.InactiveReason = InactiveNone
	return l
}

// WithMaxClicks возвращает копию ссылки с новым лимитом кликов
func (l Link) WithMaxClicks(maxClicks int) Link {
	l.MaxClicks = maxClicks
	return l
}

// WithExpiresAt возвращает копию ссылки с новым моментом истечения
func (l Link) WithExpiresAt(expiresAt time.Time) Link {
	l.ExpiresAt = expiresAt
	return l
}

// IsExpired сообщает, истёк ли срок жизни ссылки к моменту now
func (l Link) IsExpired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}

// LimitReached сообщает, исчерпан ли лимит кликов (0 означает без лимита)
func (l Link) LimitReached() bool {
	return l.MaxClicks > 0 && l.Clicks >= l.MaxClicks
}

// Evaluate проверяет состояние ссылки в фиксированном порядке:
// неактивна, истекла, лимит исчерпан, иначе OpenOK. Ссылку не изменяет.
func (l Link) Evaluate(now time.Time) OpenResult {
	switch {
	case !l.Active:
		return OpenInactive
	case l.IsExpired(now):
		return OpenExpired
	case l.LimitReached():
		return OpenLimitExceeded
	default:
		return OpenOK
	}
}

// LinkStats публичное представление ссылки без владельца
type LinkStats struct {
	ID        string    `json:"id"`
	Target    string    `json:"target"`
	Clicks    int       `json:"clicks"`
	MaxClicks int       `json:"max_clicks"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Active    bool      `json:"active"`
}

// NewLinkStats собирает публичное представление ссылки
func NewLinkStats(l Link) LinkStats {
	return LinkStats{
		ID:        l.ID.String(),
		Target:    l.Target,
		Clicks:    l.Clicks,
		MaxClicks: l.MaxClicks,
		CreatedAt: l.CreatedAt,
		ExpiresAt: l.ExpiresAt,
		Active:    l.Active,
	}
}
