package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"partner-booking-service/internal/module/partner/models/response"
	"partner-booking-service/internal/pkg/errors"
	"partner-booking-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

const assignCacheTTL = 30 * time.Second

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	redisClient *redis.Client
}

type Repositories interface {
	AssignBestPartner(ctx context.Context, city string, slotStart *time.Time) (*response.PartnerAssignment, error)
}

func New(db *sqlx.DB, log log.Logger, redisClient *redis.Client) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
	}
}

// AssignBestPartner implements Repositories. Eligible partners are ranked by
// current active workload, then registration time, then name. A nil result
// means no eligible partner, which is an expected outcome and not an error.
func (r *repositories) AssignBestPartner(ctx context.Context, city string, slotStart *time.Time) (*response.PartnerAssignment, error) {
	cacheKey := assignCacheKey(city, slotStart)
	if cached := r.getCached(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	slotFilter := `ps.slot_start > now()`
	params := []interface{}{city}
	if slotStart != nil {
		slotFilter = `ps.slot_start = $2`
		params = append(params, *slotStart)
	}

	query := fmt.Sprintf(`
		SELECT p.id AS partner_id, p.name, COALESCE(w.active_workload, 0)::int AS active_workload
		FROM partners p
		LEFT JOIN LATERAL (
			SELECT COUNT(*) AS active_workload
			FROM bookings b
			WHERE b.partner_id = p.id AND b.status IN ('pending', 'confirmed')
		) w ON true
		WHERE p.city = $1 AND p.is_active = true
			AND EXISTS (
				SELECT 1 FROM partner_slots ps
				WHERE ps.partner_id = p.id AND ps.status = 'available' AND %s
			)
		ORDER BY active_workload ASC, p.created_at ASC, p.name ASC
		LIMIT 1
	`, slotFilter)

	var assignment response.PartnerAssignment
	err := r.db.GetContext(ctx, &assignment, query, params...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error(ctx, "error assign best partner", err)
		return nil, errors.InternalServerError("error assign best partner")
	}

	r.setCached(ctx, cacheKey, &assignment)
	return &assignment, nil
}

func (r *repositories) getCached(ctx context.Context, key string) *response.PartnerAssignment {
	if r.redisClient == nil {
		return nil
	}
	data, err := r.redisClient.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var assignment response.PartnerAssignment
	if err := json.Unmarshal([]byte(data), &assignment); err != nil {
		return nil
	}
	return &assignment
}

func (r *repositories) setCached(ctx context.Context, key string, assignment *response.PartnerAssignment) {
	if r.redisClient == nil {
		return
	}
	data, err := json.Marshal(assignment)
	if err != nil {
		return
	}
	if err := r.redisClient.Set(ctx, key, data, assignCacheTTL).Err(); err != nil {
		r.log.Warn(ctx, "error cache partner assignment", err)
	}
}

func assignCacheKey(city string, slotStart *time.Time) string {
	if slotStart == nil {
		return fmt.Sprintf("partner_assign:%s:any", city)
	}
	return fmt.Sprintf("partner_assign:%s:%d", city, slotStart.Unix())
}
