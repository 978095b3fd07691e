// internal/app/insights/resolve.go
package insights

import (
	"github.com/dalemusser/recyclehub/internal/domain/models"
)

// ResolveCollector resolves the collector referenced by an embedded
// CollectorRef. Resolution is two-stage: an id match wins over any name
// match, and the name fallback is consulted only when no id match exists
// in the whole collection. Within a stage the first occurrence in
// collection order wins, so the same ambiguous input always resolves to
// the same record.
//
// A nil ref or no match returns ok=false; callers treat every derived
// field as "Unknown"/zero rather than failing.
func ResolveCollector(ref *models.CollectorRef, collectors []models.Collector) (models.Collector, bool) {
	if ref == nil {
		return models.Collector{}, false
	}
	if ref.ID != "" {
		for _, c := range collectors {
			if c.ID.Hex() == ref.ID {
				return c, true
			}
		}
	}
	if ref.Name != "" {
		for _, c := range collectors {
			if c.FullName == ref.Name {
				return c, true
			}
		}
	}
	return models.Collector{}, false
}

// ResolveUser resolves the requester of a request by exact email equality
// against the embedded UserInfo snapshot. First occurrence wins.
func ResolveUser(req models.Request, users []models.User) (models.User, bool) {
	if req.UserInfo.Email == "" {
		return models.User{}, false
	}
	for _, u := range users {
		if u.Email == req.UserInfo.Email {
			return u, true
		}
	}
	return models.User{}, false
}
