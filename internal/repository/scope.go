package repo

import "prlens/internal/models"

// scopeFilter returns a WHERE clause (with ? bindvars) restricting rows to scope.
func scopeFilter(scope models.RepoScope) (string, []any) {
	if scope.IsAll() {
		return "", nil
	}
	return " WHERE LOWER(owner) = LOWER(?) AND LOWER(repo) = LOWER(?)", []any{scope.Owner, scope.Repo}
}
