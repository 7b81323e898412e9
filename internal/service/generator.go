package service

import (
	"crypto/sha256"

	"github.com/avc-dev/shortlinks/internal/model"
	"github.com/google/uuid"
)

const (
	CodeLength   = 8
	AllowedChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// HashGenerator детерминированно выводит код из SHA-256 от владельца, URL и соли
type HashGenerator struct{}

// NewHashGenerator создает новый генератор кодов
func NewHashGenerator() *HashGenerator {
	return &HashGenerator{}
}

// GenerateCode хеширует owner, затем "target|salt" и упаковывает биты
// дайджеста по 6 в индексы алфавита (по модулю 62)
func (g *HashGenerator) GenerateCode(owner uuid.UUID, target string, salt string) model.Code {
	h := sha256.New()
	h.Write([]byte(owner.String()))
	h.Write([]byte(target + "|" + salt))

	return model.Code(encodeBase62(h.Sum(nil), CodeLength))
}

// encodeBase62 читает байты как поток бит старшими вперёд
func encodeBase62(digest []byte, length int) string {
	result := make([]byte, 0, length)

	var acc uint64
	bits := 0
	for _, b := range digest {
		acc = acc<<8 | uint64(b)
		bits += 8
		for bits >= 6 {
			idx := (acc >> (bits - 6)) & 0x3F
			result = append(result, AllowedChars[idx%uint64(len(AllowedChars))])
			bits -= 6
			if len(result) == length {
				return string(result)
			}
		}
	}

	return string(result)
}

// IsValidCode проверяет, что код непустой и состоит только из символов алфавита
func IsValidCode(code string) bool {
	if code == "" {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		isDigit := c >= '0' && c <= '9'
		isUpper := c >= 'A' && c <= 'Z'
		isLower := c >= 'a' && c <= 'z'
		if !isDigit && !isUpper && !isLower {
			return false
		}
	}
	return true
}
