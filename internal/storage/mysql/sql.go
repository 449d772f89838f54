package mysql

// -----------------------------------------------------------------------------
// WRITES (seeder, click worker)
// -----------------------------------------------------------------------------

const upsertPartnerSQL = `
INSERT INTO partners
  (id, name, logo, booking_type, base_url, is_active, priority)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name         = VALUES(name),
  logo         = VALUES(logo),
  booking_type = VALUES(booking_type),
  base_url     = VALUES(base_url),
  is_active    = VALUES(is_active),
  priority     = VALUES(priority)
`

const upsertDestinationSQL = `
INSERT INTO destinations
  (city, country, region, latitude, longitude, population, is_popular)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  region     = VALUES(region),
  latitude   = VALUES(latitude),
  longitude  = VALUES(longitude),
  population = VALUES(population),
  is_popular = VALUES(is_popular)
`

// id = LAST_INSERT_ID(id) makes LastInsertId return the existing row on update.
const upsertHotelSQL = `
INSERT INTO hotels
  (name, slug, city, country, star_rating, review_score, review_count, base_price, description, property_type, primary_image)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  id            = LAST_INSERT_ID(id),
  name          = VALUES(name),
  city          = VALUES(city),
  country       = VALUES(country),
  star_rating   = VALUES(star_rating),
  review_score  = COALESCE(VALUES(review_score), hotels.review_score),
  review_count  = VALUES(review_count),
  base_price    = VALUES(base_price),
  description   = COALESCE(VALUES(description), hotels.description),
  property_type = COALESCE(VALUES(property_type), hotels.property_type),
  primary_image = COALESCE(VALUES(primary_image), hotels.primary_image),
  updated_at    = CURRENT_TIMESTAMP
`

const upsertRoomTypeSQL = `
INSERT INTO room_types (hotel_id, name)
VALUES (?, ?)
ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)
`

const insertRatesPrefix = "INSERT INTO room_rates\n  (room_type_id, partner_id, checkin, checkout, base_price, taxes, currency, refundable, availability, booking_url)\nVALUES "

// ratesPerInsert keeps a batch well under the 65535 placeholder limit.
const ratesPerInsert = 500

// Clicks arrive at least once from the queue; the id makes redelivery a no-op.
const insertClickSQL = `
INSERT IGNORE INTO clicks
  (id, hotel_id, partner_id, ip, device, user_agent, clicked_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const hotelColumns = `
  h.id, h.name, h.slug, h.city, h.country, h.star_rating, h.review_score,
  h.review_count, h.base_price, h.description, h.property_type, h.primary_image`

const getHotelSQL = `SELECT` + hotelColumns + `
FROM hotels h
WHERE h.id = ?`

// Case-insensitive substring match on city.
const searchHotelsSQL = `SELECT` + hotelColumns + `
FROM hotels h
WHERE LOWER(h.city) LIKE CONCAT('%', LOWER(?), '%') ESCAPE '!'
ORDER BY h.id
LIMIT ?`

// ORDER BY base_price, id keeps the cheapest row first per partner and
// gives ties a stable order.
const listRatesPrefix = `
SELECT
  rr.id, rt.hotel_id, rr.room_type_id, rt.name, rr.partner_id,
  rr.checkin, rr.checkout, rr.base_price, rr.taxes, rr.currency,
  rr.refundable, rr.availability, rr.booking_url
FROM room_rates rr
JOIN room_types rt ON rt.id = rr.room_type_id
WHERE rr.checkin BETWEEN ? AND ?
  AND rt.hotel_id IN (`

const listRatesSuffix = `)
ORDER BY rt.hotel_id, rr.base_price, rr.id`

const listPartnersSQL = `
SELECT id, name, logo, booking_type, base_url, is_active, priority
FROM partners
ORDER BY priority, id`

const destinationColumns = `id, city, country, region, latitude, longitude, population, is_popular`

const searchDestinationsSQL = `SELECT ` + destinationColumns + `
FROM destinations
WHERE LOWER(city) LIKE CONCAT('%', LOWER(?), '%') ESCAPE '!'
   OR LOWER(country) LIKE CONCAT('%', LOWER(?), '%') ESCAPE '!'
ORDER BY is_popular DESC, population DESC
LIMIT ?`

const popularDestinationsSQL = `SELECT ` + destinationColumns + `
FROM destinations
WHERE is_popular = TRUE
ORDER BY population DESC
LIMIT ?`
