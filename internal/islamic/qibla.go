package islamic

import (
	"context"
	"strconv"
	"time"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/fetcher"
)

type Qibla struct {
	Direction float64 `json:"direction"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type QiblaService struct {
	client Fetcher
	cache  fetcher.Cache
	ttl    time.Duration
}

func NewQiblaService(client Fetcher, cache fetcher.Cache, ttl time.Duration) *QiblaService {
	return &QiblaService{
		client: client,
		cache:  cache,
		ttl:    ttlOr(ttl, 24*time.Hour),
	}
}

// Direction is the bearing towards the Kaaba from lat/lng, in degrees from north.
func (qs *QiblaService) Direction(ctx context.Context, lat, lng float64) (Qibla, bool) {
	latS := strconv.FormatFloat(lat, 'f', -1, 64)
	lngS := strconv.FormatFloat(lng, 'f', -1, 64)
	return fetcher.Remember(ctx, qs.cache, latS+"_"+lngS, qs.ttl, func(ctx context.Context) fetcher.Optional[Qibla] {
		resp, ok := qs.client.Fetch(ctx, fetcher.MethodGet, "qibla/"+latS+"/"+lngS, nil)
		if !ok || resp.Get("code").Int() != 200 {
			return fetcher.None[Qibla]()
		}
		direction := resp.Get("data.direction")
		if !direction.Exists() {
			return fetcher.None[Qibla]()
		}
		result := Qibla{Direction: direction.Float(), Latitude: lat, Longitude: lng}
		if v := resp.Get("data.latitude"); v.Exists() {
			result.Latitude = v.Float()
		}
		if v := resp.Get("data.longitude"); v.Exists() {
			result.Longitude = v.Float()
		}
		return fetcher.Some(result)
	}).Get()
}
