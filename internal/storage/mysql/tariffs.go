package mysql

import (
	"context"
	"fmt"

	"moving-quote/internal/storage"
)

func (s *Storage) GetSpecialDays(ctx context.Context) ([]storage.SpecialDayRow, error) {
	const op = "storage.mysql.GetSpecialDays"

	stmt := `
		SELECT form_key, label, price, ord
		FROM special_days
		ORDER BY ord
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var days []storage.SpecialDayRow
	for rows.Next() {
		var d storage.SpecialDayRow
		if err := rows.Scan(&d.FormKey, &d.Label, &d.Price, &d.Ord); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		days = append(days, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return days, nil
}

func (s *Storage) GetLongDistanceTariffs(ctx context.Context) ([]storage.LongDistanceRow, error) {
	const op = "storage.mysql.GetLongDistanceTariffs"

	stmt := `
		SELECT route, price
		FROM long_distance_tariffs
		ORDER BY route
	`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var tariffs []storage.LongDistanceRow
	for rows.Next() {
		var t storage.LongDistanceRow
		if err := rows.Scan(&t.Route, &t.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		tariffs = append(tariffs, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tariffs, nil
}

// UpdateSpecialDays перезаписывает цены надбавок за дату из админки.
// Каталог в памяти не трогаем, новые цены подхватываются после рестарта.
func (s *Storage) UpdateSpecialDays(ctx context.Context, days []storage.SpecialDayRow) error {
	const op = "storage.mysql.UpdateSpecialDays"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	stmt := `UPDATE special_days SET label = ?, price = ? WHERE form_key = ?`
	for _, d := range days {
		if _, err := tx.ExecContext(ctx, stmt, d.Label, d.Price, d.FormKey); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) UpdateLongDistanceTariffs(ctx context.Context, tariffs []storage.LongDistanceRow) error {
	const op = "storage.mysql.UpdateLongDistanceTariffs"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	stmt := `
		INSERT INTO long_distance_tariffs (route, price)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE price = VALUES(price)
	`
	for _, t := range tariffs {
		if _, err := tx.ExecContext(ctx, stmt, t.Route, t.Price); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
