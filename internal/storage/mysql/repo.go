package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"hotel_compare/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullStr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// likeEscape escapes LIKE wildcards using '!' as the escape character.
func likeEscape(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

// Open connects to MySQL and verifies the connection.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

/********** writes **********/

func (r *Repo) UpsertPartner(ctx context.Context, p domain.Partner) error {
	_, err := r.db.ExecContext(ctx, upsertPartnerSQL,
		p.ID, p.Name, p.Logo, p.BookingType, p.BaseURL, p.Active, p.Priority)
	return err
}

func (r *Repo) UpsertDestination(ctx context.Context, d domain.Destination) error {
	_, err := r.db.ExecContext(ctx, upsertDestinationSQL,
		d.City, d.Country, d.Region, d.Latitude, d.Longitude, d.Population, d.IsPopular)
	return err
}

// UpsertHotel is keyed by slug and returns the row id.
func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) (int64, error) {
	res, err := r.db.ExecContext(ctx, upsertHotelSQL,
		h.Name,
		h.Slug,
		h.City,
		h.Country,
		h.StarRating,
		valF64(h.ReviewScore),
		h.ReviewCount,
		h.BasePrice,
		valStr(h.Description),
		valStr(h.PropertyType),
		valStr(h.PrimaryImage),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) UpsertRoomType(ctx context.Context, rt domain.RoomType) (int64, error) {
	res, err := r.db.ExecContext(ctx, upsertRoomTypeSQL, rt.HotelID, rt.Name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) InsertRates(ctx context.Context, rs []domain.RoomRate) error {
	for start := 0; start < len(rs); start += ratesPerInsert {
		end := min(start+ratesPerInsert, len(rs))
		if err := r.insertRateBatch(ctx, rs[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repo) insertRateBatch(ctx context.Context, rs []domain.RoomRate) error {
	values := make([]string, 0, len(rs))
	args := make([]any, 0, len(rs)*10) // 10 params per row
	for _, rr := range rs {
		values = append(values, "(?,?,?,?,?,?,?,?,?,?)")
		args = append(args,
			rr.RoomTypeID,
			rr.PartnerID,
			rr.Checkin,
			rr.Checkout,
			rr.BasePrice,
			rr.Taxes,
			rr.Currency,
			rr.Refundable,
			rr.Availability,
			rr.BookingURL,
		)
	}
	_, err := r.db.ExecContext(ctx, insertRatesPrefix+strings.Join(values, ","), args...)
	return err
}

func (r *Repo) InsertClick(ctx context.Context, c domain.Click) error {
	_, err := r.db.ExecContext(ctx, insertClickSQL,
		c.ID, c.HotelID, c.PartnerID, c.IP, c.Device, c.UserAgent, c.ClickedAt)
	return err
}

/********** reads **********/

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHotel(s rowScanner) (domain.Hotel, error) {
	var h domain.Hotel
	var score sql.NullFloat64
	var desc, ptype, img sql.NullString
	if err := s.Scan(
		&h.ID, &h.Name, &h.Slug, &h.City, &h.Country, &h.StarRating, &score,
		&h.ReviewCount, &h.BasePrice, &desc, &ptype, &img,
	); err != nil {
		return domain.Hotel{}, err
	}
	if score.Valid {
		f := score.Float64
		h.ReviewScore = &f
	}
	h.Description = nullStr(desc)
	h.PropertyType = nullStr(ptype)
	h.PrimaryImage = nullStr(img)
	return h, nil
}

func (r *Repo) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	h, err := scanHotel(r.db.QueryRowContext(ctx, getHotelSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, err
	}
	return h, nil
}

func (r *Repo) SearchHotels(ctx context.Context, city string, limit int) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, searchHotelsSQL, likeEscape(city), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// ListRates returns rates with checkin in [from, to] for the given hotels,
// cheapest first within each hotel.
func (r *Repo) ListRates(ctx context.Context, hotelIDs []int64, from, to time.Time) ([]domain.RoomRate, error) {
	if len(hotelIDs) == 0 {
		return nil, nil
	}
	marks := strings.TrimSuffix(strings.Repeat("?,", len(hotelIDs)), ",")
	args := make([]any, 0, len(hotelIDs)+2)
	args = append(args, from, to)
	for _, id := range hotelIDs {
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, listRatesPrefix+marks+listRatesSuffix, args...)
	if err != nil {
		return nil, fmt.Errorf("query rates: %w", err)
	}
	defer rows.Close()

	var out []domain.RoomRate
	for rows.Next() {
		var rr domain.RoomRate
		if err := rows.Scan(
			&rr.ID, &rr.HotelID, &rr.RoomTypeID, &rr.RoomTypeName, &rr.PartnerID,
			&rr.Checkin, &rr.Checkout, &rr.BasePrice, &rr.Taxes, &rr.Currency,
			&rr.Refundable, &rr.Availability, &rr.BookingURL,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *Repo) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	rows, err := r.db.QueryContext(ctx, listPartnersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Partner
	for rows.Next() {
		var p domain.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Logo, &p.BookingType, &p.BaseURL, &p.Active, &p.Priority); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) SearchDestinations(ctx context.Context, q string, limit int) ([]domain.Destination, error) {
	term := likeEscape(q)
	return r.destinations(ctx, searchDestinationsSQL, term, term, limit)
}

func (r *Repo) PopularDestinations(ctx context.Context, limit int) ([]domain.Destination, error) {
	return r.destinations(ctx, popularDestinationsSQL, limit)
}

func (r *Repo) destinations(ctx context.Context, query string, args ...any) ([]domain.Destination, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Destination
	for rows.Next() {
		var d domain.Destination
		if err := rows.Scan(&d.ID, &d.City, &d.Country, &d.Region, &d.Latitude, &d.Longitude, &d.Population, &d.IsPopular); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
