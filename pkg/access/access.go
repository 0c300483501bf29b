// Package access derives authorization from cached organization data.
package access

import "github.com/teamdesk/teamdesk/pkg/proto"

// IsOrgAdmin returns true if the user administers the organization.
func IsOrgAdmin(org proto.Organization, userID int64) bool {
	if userID == 0 {
		return false
	}
	for _, admin := range org.Admins {
		if admin.ID == userID {
			return true
		}
	}
	return false
}

// IsAdmin returns true if the user administers at least one of the
// organizations. An empty list or a zero user id resolves to false, not an
// error.
func IsAdmin(orgs []proto.Organization, userID int64) bool {
	for _, org := range orgs {
		if IsOrgAdmin(org, userID) {
			return true
		}
	}
	return false
}
