package onemap

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sgtransitlab/sgmcp/pkg/geo"
)

// RouteMode selects how a journey is planned.
type RouteMode string

const (
	ModePublicTransport RouteMode = "PUBLIC_TRANSPORT"
	ModeWalk            RouteMode = "WALK"
	ModeDrive           RouteMode = "DRIVE"
)

// routeType maps a RouteMode to the OneMap routeType query value.
func (m RouteMode) routeType() string {
	switch m {
	case ModeWalk:
		return "walk"
	case ModeDrive:
		return "drive"
	default:
		return "pt"
	}
}

// RouteOptions configures a route planning request. The struct is fully
// populated at the tool boundary and passed down immutably.
type RouteOptions struct {
	Mode            RouteMode
	MaxWalkDistance int    // meters, public transport only
	Date            string // MM-DD-YYYY, public transport only
	Time            string // HH:MM:SS, public transport only
}

// PlanRoute requests a route between two points. A response with no
// itineraries and no instructions is a valid "no route" value and is returned
// as-is; the caller classifies the shape. Network and decode failures return
// an error.
func (c *Client) PlanRoute(ctx context.Context, from, to geo.Location, opts RouteOptions) (*RouteResponse, error) {
	key := fmt.Sprintf("%.5f,%.5f|%.5f,%.5f|%s|%d|%s|%s",
		from.Latitude, from.Longitude, to.Latitude, to.Longitude,
		opts.Mode, opts.MaxWalkDistance, opts.Date, opts.Time)
	if cached, ok := c.routeCache.Get(key); ok {
		return cached, nil
	}

	q := url.Values{}
	q.Set("start", fmt.Sprintf("%f,%f", from.Latitude, from.Longitude))
	q.Set("end", fmt.Sprintf("%f,%f", to.Latitude, to.Longitude))
	q.Set("routeType", opts.Mode.routeType())

	if opts.Mode == ModePublicTransport || opts.Mode == "" {
		q.Set("mode", "TRANSIT")
		if opts.MaxWalkDistance > 0 {
			q.Set("maxWalkDistance", strconv.Itoa(opts.MaxWalkDistance))
		}
		if opts.Date != "" {
			q.Set("date", opts.Date)
		}
		if opts.Time != "" {
			q.Set("time", opts.Time)
		}
	}

	var result RouteResponse
	if err := c.get(ctx, "/api/public/routingsvc/route", q, &result); err != nil {
		c.logger.Error("route planning failed",
			"mode", opts.Mode,
			"error", err)
		return nil, err
	}

	c.routeCache.Set(key, &result)
	return &result, nil
}
