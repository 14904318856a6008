package cli

import (
	"context"
	"fmt"
	"strconv"

	pkgapi "github.com/ahjin-guild/dialectmap/pkg/api"
)

func (c *Cli) runNearby(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: nearby <lat> <lon> [radius_km]")
	}

	lat, err := parseCoord(args[0], "latitude")
	if err != nil {
		return err
	}
	lon, err := parseCoord(args[1], "longitude")
	if err != nil {
		return err
	}

	radiusKm := 50.0
	if len(args) > 2 {
		radiusKm, err = parseCoord(args[2], "radius_km")
		if err != nil {
			return err
		}
	}

	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	list, err := c.apiClient.SearchNearby(ctx, c.sess, lat, lon, radiusKm)
	if err != nil {
		return err
	}

	c.printRecords(list.Records)
	return nil
}

func (c *Cli) runBBox(ctx context.Context, args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: bbox <min_lat> <min_lon> <max_lat> <max_lon>")
	}

	coords := make([]float64, 4)
	names := []string{"min_lat", "min_lon", "max_lat", "max_lon"}
	for i, name := range names {
		v, err := parseCoord(args[i], name)
		if err != nil {
			return err
		}
		coords[i] = v
	}

	if err := c.ensureSession(ctx); err != nil {
		return err
	}

	list, err := c.apiClient.SearchBBox(ctx, c.sess, coords[0], coords[1], coords[2], coords[3])
	if err != nil {
		return err
	}

	c.printRecords(list.Records)
	return nil
}

func (c *Cli) printRecords(records []pkgapi.Record) {
	if len(records) == 0 {
		c.io.Println("No records found.")
		return
	}

	c.io.Printf("Found %d record(s):\n\n", len(records))
	for _, rec := range records {
		c.io.Printf("ID:       %s\n", rec.ID)
		c.io.Printf("Title:    %s\n", rec.Title)
		c.io.Printf("Location: %s\n", rec.LocationText)
		if rec.Latitude != nil && rec.Longitude != nil {
			c.io.Printf("Coords:   %.4f, %.4f\n", *rec.Latitude, *rec.Longitude)
		}
		c.io.Println()
	}
}

func parseCoord(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, s)
	}
	return v, nil
}
