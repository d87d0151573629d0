// Package repomanager aggregates the per-entity repositories behind one
// constructor so callers receive all stores from a single place. A
// persistent backend can be substituted by providing another manager
// without touching the services.
package repomanager

import (
	"github.com/adergachev/recipevault/internal/server/repositories/recipes"
	"github.com/adergachev/recipevault/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Recipes() recipes.Repository
}
