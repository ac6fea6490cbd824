package cache

import (
	"crypto/sha1"
	"fmt"
	"strconv"

	"cleaning_coop/internal/domain/entities"
)

// ScopeAll scopes a view that is not keyed by an entity id.
const ScopeAll = "all"

// scopeAny names the view-wide generation counter.
const scopeAny = "any"

// Generation is the pair of invalidation counters a rendering was built
// under: the view-wide one and the one of its scope.
type Generation struct {
	View  int64
	Scope int64
}

func (g Generation) String() string {
	return fmt.Sprintf("g%d.%d", g.View, g.Scope)
}

// Key is the cache key of one rendering of view:
//
//	{prefix}:{view}:{scope}:{generation}:{sha1(query)}
//
// scope is the request id for request_detail, the company id for
// company_queue and ScopeAll for request_list.
func Key(prefix string, view entities.View, scope string, gen Generation, rawQuery string) string {
	sum := sha1.Sum([]byte(rawQuery))
	return fmt.Sprintf("%s:%s:%s:%s:%x", prefix, view, scope, gen, sum[:])
}

// GenerationKey holds the counter bumped whenever view is invalidated within
// scope. An empty scope is the view-wide counter.
func GenerationKey(prefix string, view entities.View, scope string) string {
	if scope == "" {
		scope = scopeAny
	}
	return fmt.Sprintf("%s:gen:%s:%s", prefix, view, scope)
}

// Pattern matches every rendering of view within scope. An empty scope matches all scopes.
func Pattern(prefix string, view entities.View, scope string) string {
	if scope == "" {
		scope = "*"
	}
	return fmt.Sprintf("%s:%s:%s:*", prefix, view, scope)
}

// Target is one view/scope pair a change event invalidates. An empty Scope
// means every scope of View.
type Target struct {
	View  entities.View
	Scope string
}

// Targets lists what e invalidates.
func Targets(e entities.ChangeEvent) []Target {
	var out []Target
	for _, v := range e.Views {
		switch v {
		case entities.ViewRequestList:
			out = append(out, Target{View: v, Scope: ScopeAll})
		case entities.ViewRequestDetail:
			out = append(out, Target{View: v, Scope: idScope(e.RequestID)})
		case entities.ViewCompanyQueue:
			out = append(out, Target{View: v, Scope: idScope(e.CompanyID)})
		}
	}
	return out
}

// Patterns lists the key patterns of every target of e.
func Patterns(prefix string, e entities.ChangeEvent) []string {
	targets := Targets(e)
	out := make([]string, 0, len(targets))
	for _, t := range targets {
		out = append(out, Pattern(prefix, t.View, t.Scope))
	}
	return out
}

func idScope(id int64) string {
	if id <= 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
