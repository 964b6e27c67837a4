package request

import (
	"errors"
	"strings"

	"gestion_tramites/internal/domain/entities"
)

var ErrUnknownKind = errors.New("unknown entity kind")

// ParseKind accepts the recycle bin kinds, singular or plural.
func ParseKind(raw string) (entities.EntityKind, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	v = strings.TrimSuffix(v, "s")
	kind := entities.EntityKind(v)
	if !kind.Recyclable() {
		return "", ErrUnknownKind
	}
	return kind, nil
}
