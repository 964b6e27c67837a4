package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gestion_tramites/internal/domain/entities"
)

func TestOwnersOf(t *testing.T) {
	assert.Empty(t, OwnersOf(entities.EntityKindClient))
	assert.Equal(t, []OwnerEdge{
		{Owner: entities.EntityKindClient, ForeignKey: ForeignKeyClientID},
	}, OwnersOf(entities.EntityKindCase))
	assert.Equal(t, []OwnerEdge{
		{Owner: entities.EntityKindCase, ForeignKey: ForeignKeyCaseID},
		{Owner: entities.EntityKindClient, ForeignKey: ForeignKeyClientID},
	}, OwnersOf(entities.EntityKindProcedure))
}
