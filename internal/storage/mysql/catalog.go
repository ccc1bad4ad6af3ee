package mysql

import (
	"context"
	"fmt"

	"moving-quote/internal/storage"
)

func (s *Storage) GetItems(ctx context.Context) ([]storage.ItemRow, error) {
	const op = "storage.mysql.GetItems"

	stmt := `
		SELECT category, name, volume_m3, weight_kg
		FROM catalog_items
		ORDER BY category, sort_order
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []storage.ItemRow
	for rows.Next() {
		var item storage.ItemRow
		if err := rows.Scan(&item.Category, &item.Name, &item.VolumeM3, &item.WeightKg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

func (s *Storage) GetVehicles(ctx context.Context) ([]storage.VehicleRow, error) {
	const op = "storage.mysql.GetVehicles"

	stmt := `
		SELECT name, capacity_m3, weight_capacity_kg
		FROM vehicles
		ORDER BY capacity_m3
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var vehicles []storage.VehicleRow
	for rows.Next() {
		var v storage.VehicleRow
		if err := rows.Scan(&v.Name, &v.CapacityM3, &v.WeightCapacityKg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		vehicles = append(vehicles, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return vehicles, nil
}

func (s *Storage) GetVehiclePrices(ctx context.Context) ([]storage.VehiclePriceRow, error) {
	const op = "storage.mysql.GetVehiclePrices"

	stmt := `
		SELECT category, vehicle, base_price, base_men, base_women
		FROM vehicle_prices
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var prices []storage.VehiclePriceRow
	for rows.Next() {
		var p storage.VehiclePriceRow
		if err := rows.Scan(&p.Category, &p.Vehicle, &p.BasePrice, &p.BaseMen, &p.BaseWomen); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		prices = append(prices, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return prices, nil
}

func (s *Storage) GetFloorPrices(ctx context.Context) ([]storage.FloorPriceRow, error) {
	const op = "storage.mysql.GetFloorPrices"

	stmt := `
		SELECT range_key, min_floor, max_floor, bucket, price
		FROM floor_prices
		ORDER BY min_floor
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var prices []storage.FloorPriceRow
	for rows.Next() {
		var p storage.FloorPriceRow
		if err := rows.Scan(&p.RangeKey, &p.MinFloor, &p.MaxFloor, &p.Bucket, &p.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		prices = append(prices, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return prices, nil
}

func (s *Storage) GetTonnageBuckets(ctx context.Context) ([]storage.TonnageBucketRow, error) {
	const op = "storage.mysql.GetTonnageBuckets"

	stmt := `
		SELECT bucket, threshold, is_default
		FROM tonnage_buckets
		ORDER BY threshold DESC
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var buckets []storage.TonnageBucketRow
	for rows.Next() {
		var b storage.TonnageBucketRow
		if err := rows.Scan(&b.Bucket, &b.Threshold, &b.IsDefault); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		buckets = append(buckets, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buckets, nil
}

func (s *Storage) GetStorageRates(ctx context.Context) ([]storage.StorageRateRow, error) {
	const op = "storage.mysql.GetStorageRates"

	stmt := `
		SELECT type, rate_per_day
		FROM storage_rates
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var rates []storage.StorageRateRow
	for rows.Next() {
		var r storage.StorageRateRow
		if err := rows.Scan(&r.Type, &r.RatePerDay); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		rates = append(rates, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rates, nil
}

func (s *Storage) GetSettings(ctx context.Context) ([]storage.SettingRow, error) {
	const op = "storage.mysql.GetSettings"

	stmt := `
		SELECT name, value
		FROM calc_settings
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var settings []storage.SettingRow
	for rows.Next() {
		var st storage.SettingRow
		if err := rows.Scan(&st.Name, &st.Value); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		settings = append(settings, st)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return settings, nil
}
