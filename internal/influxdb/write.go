package influxdb

import (
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"fieldops/internal/domain"
)

const dispatchMeasurement = "dispatch"

// DispatchPoint converts a notification into a point stamped with the
// assignment time.
func DispatchPoint(n domain.DispatchNotification) *write.Point {
	return write.NewPoint(
		dispatchMeasurement,
		map[string]string{
			"team_id":   n.TeamID.String(),
			"team_name": n.TeamName,
		},
		map[string]interface{}{
			"emergency_id": n.EmergencyID.String(),
			"distance_km":  n.DistanceKM,
			"lat":          n.Lat,
			"lng":          n.Lng,
		},
		n.AssignedAt,
	)
}

// RecordDispatch queues the point; it is dropped when the client is closed.
func (c *Client) RecordDispatch(n domain.DispatchNotification) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(DispatchPoint(n))
}
