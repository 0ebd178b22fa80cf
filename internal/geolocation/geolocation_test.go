package geolocation

import (
	"context"
	"net"
	"testing"
	"time"

	"wedding-map/internal/models"
	"wedding-map/internal/navigation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDatabase is a mock implementation of the Database interface
type MockDatabase struct {
	mock.Mock
}

func (m *MockDatabase) Lookup(ip net.IP, result any) error {
	args := m.Called(ip.String())
	if rec, ok := args.Get(0).(*cityRecord); ok && rec != nil {
		*(result.(*cityRecord)) = *rec
	}
	return args.Error(1)
}

func record(lat, lng float64, radiusKm uint16) *cityRecord {
	rec := &cityRecord{}
	rec.Location.Latitude = lat
	rec.Location.Longitude = lng
	rec.Location.AccuracyRadius = radiusKm
	return rec
}

func TestIPLocator_Locate(t *testing.T) {
	tests := []struct {
		name        string
		ip          string
		mockRecord  *cityRecord
		mockError   error
		expected    models.Position
		expectNoPos bool
		expectError bool
		expectCall  bool
	}{
		{
			name:       "public address",
			ip:         "8.8.8.8",
			mockRecord: record(42.28, -83.74, 20),
			expected: models.Position{
				Coordinate:     models.Coordinate{Latitude: 42.28, Longitude: -83.74},
				AccuracyMeters: 20000,
			},
			expectCall: true,
		},
		{
			name:        "private address",
			ip:          "192.168.1.10",
			expectNoPos: true,
			expectError: true,
		},
		{
			name:        "loopback",
			ip:          "127.0.0.1",
			expectNoPos: true,
			expectError: true,
		},
		{
			name:        "garbage",
			ip:          "not-an-ip",
			expectNoPos: true,
			expectError: true,
		},
		{
			name:        "address not in database",
			ip:          "1.2.3.4",
			mockRecord:  record(0, 0, 0),
			expectNoPos: true,
			expectError: true,
			expectCall:  true,
		},
		{
			name:        "database error",
			ip:          "1.2.3.4",
			mockRecord:  nil,
			mockError:   assert.AnError,
			expectError: true,
			expectCall:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDatabase)
			if tt.expectCall {
				db.On("Lookup", tt.ip).Return(tt.mockRecord, tt.mockError)
			}
			locator := NewIPLocator(db, 16, time.Minute)

			pos, err := locator.Locate(context.Background(), tt.ip)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, tt.expectNoPos, IsNoPosition(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, pos)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestIPLocator_CachesLookups(t *testing.T) {
	db := new(MockDatabase)
	db.On("Lookup", "8.8.4.4").Return(record(42.0, -83.0, 5), nil).Once()
	locator := NewIPLocator(db, 16, time.Minute)

	for i := 0; i < 3; i++ {
		pos, err := locator.For("8.8.4.4").CurrentPosition(context.Background(), navigation.PositionOptions{HighAccuracy: true})
		require.NoError(t, err)
		assert.Equal(t, 42.0, pos.Latitude)
	}

	db.AssertNumberOfCalls(t, "Lookup", 1)
}

func TestIPLocator_CancelledContext(t *testing.T) {
	locator := NewIPLocator(new(MockDatabase), 0, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := locator.Locate(ctx, "8.8.8.8")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStatic(t *testing.T) {
	pos, err := NewStatic(42.0, -83.0).CurrentPosition(context.Background(), navigation.PositionOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.Coordinate{Latitude: 42.0, Longitude: -83.0}, pos.Coordinate)
}

func TestDenied(t *testing.T) {
	_, err := Denied{}.CurrentPosition(context.Background(), navigation.PositionOptions{})
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.True(t, IsNoPosition(err))
}

func TestDenied_FallsBackToSearch(t *testing.T) {
	venue := models.Venue{Key: "dtw", Address: "9000 Middlebelt Rd, Romulus, MI 48174"}

	res := navigation.NewResolver(Denied{}, time.Second).Resolve(context.Background(), venue)

	assert.True(t, res.Fallback)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=9000%20Middlebelt%20Rd%2C%20Romulus%2C%20MI%2048174", res.URL)
}
