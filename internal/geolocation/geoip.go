package geolocation

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"wedding-map/internal/models"
	"wedding-map/internal/navigation"

	"github.com/bluele/gcache"
	"github.com/oschwald/maxminddb-golang"
)

// Database is the subset of *maxminddb.Reader the locator needs.
type Database interface {
	Lookup(ip net.IP, result any) error
}

type cityRecord struct {
	Location struct {
		Latitude       float64 `maxminddb:"latitude"`
		Longitude      float64 `maxminddb:"longitude"`
		AccuracyRadius uint16  `maxminddb:"accuracy_radius"`
	} `maxminddb:"location"`
}

// IPLocator estimates a position from an IP address using a MaxMind city database.
// Lookups are cached per address.
type IPLocator struct {
	db    Database
	cache gcache.Cache
}

// OpenIPLocator opens the database at path.
func OpenIPLocator(path string, cacheSize int, ttl time.Duration) (*IPLocator, *maxminddb.Reader, error) {
	reader, err := maxminddb.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("geolocation: failed to open %s: %w", path, err)
	}
	return NewIPLocator(reader, cacheSize, ttl), reader, nil
}

// NewIPLocator wraps an already opened database.
func NewIPLocator(db Database, cacheSize int, ttl time.Duration) *IPLocator {
	if cacheSize <= 0 {
		cacheSize = 1024
	}
	l := &IPLocator{db: db}
	builder := gcache.New(cacheSize).LRU().LoaderFunc(func(key interface{}) (interface{}, error) {
		return l.lookup(key.(string))
	})
	if ttl > 0 {
		builder = builder.Expiration(ttl)
	}
	l.cache = builder.Build()
	return l
}

// Locate returns the estimated position of ip.
func (l *IPLocator) Locate(ctx context.Context, ip string) (models.Position, error) {
	if err := ctx.Err(); err != nil {
		return models.Position{}, err
	}
	v, err := l.cache.Get(ip)
	if err != nil {
		return models.Position{}, err
	}
	return v.(models.Position), nil
}

func (l *IPLocator) lookup(ip string) (models.Position, error) {
	addr := net.ParseIP(ip)
	if addr == nil {
		return models.Position{}, fmt.Errorf("%w: invalid address %q", ErrPositionUnavailable, ip)
	}
	if addr.IsLoopback() || addr.IsPrivate() || addr.IsUnspecified() || addr.IsLinkLocalUnicast() {
		return models.Position{}, fmt.Errorf("%w: unroutable address %s", ErrPositionUnavailable, ip)
	}

	var rec cityRecord
	if err := l.db.Lookup(addr, &rec); err != nil {
		return models.Position{}, fmt.Errorf("geolocation: lookup %s: %w", ip, err)
	}
	if rec.Location.Latitude == 0 && rec.Location.Longitude == 0 {
		return models.Position{}, fmt.Errorf("%w: no location for %s", ErrPositionUnavailable, ip)
	}

	return models.Position{
		Coordinate: models.Coordinate{
			Latitude:  rec.Location.Latitude,
			Longitude: rec.Location.Longitude,
		},
		AccuracyMeters: float64(rec.Location.AccuracyRadius) * 1000,
	}, nil
}

// For binds the locator to one client address.
func (l *IPLocator) For(ip string) navigation.Geolocator {
	return clientLocator{locator: l, ip: ip}
}

type clientLocator struct {
	locator *IPLocator
	ip      string
}

func (c clientLocator) CurrentPosition(ctx context.Context, _ navigation.PositionOptions) (models.Position, error) {
	return c.locator.Locate(ctx, c.ip)
}

// IsNoPosition reports whether err means the source simply had nothing to offer.
func IsNoPosition(err error) bool {
	return errors.Is(err, ErrPositionUnavailable) || errors.Is(err, ErrPermissionDenied)
}
