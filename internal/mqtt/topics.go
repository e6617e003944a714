package mqtt

import (
	"strings"

	"github.com/google/uuid"
)

const defaultPrefix = "fieldops"

// TeamTopic is where a team's field devices listen for new assignments:
// {prefix}/teams/{team_id}/dispatch.
func TeamTopic(prefix string, teamID uuid.UUID) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		prefix = defaultPrefix
	}
	return prefix + "/teams/" + teamID.String() + "/dispatch"
}
