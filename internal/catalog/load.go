package catalog

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"moving-quote/internal/storage"
)

type CatalogStorage interface {
	GetItems(ctx context.Context) ([]storage.ItemRow, error)
	GetVehicles(ctx context.Context) ([]storage.VehicleRow, error)
	GetVehiclePrices(ctx context.Context) ([]storage.VehiclePriceRow, error)
	GetFloorPrices(ctx context.Context) ([]storage.FloorPriceRow, error)
	GetTonnageBuckets(ctx context.Context) ([]storage.TonnageBucketRow, error)
	GetStorageRates(ctx context.Context) ([]storage.StorageRateRow, error)
	GetLongDistanceTariffs(ctx context.Context) ([]storage.LongDistanceRow, error)
	GetSpecialDays(ctx context.Context) ([]storage.SpecialDayRow, error)
	GetSettings(ctx context.Context) ([]storage.SettingRow, error)
}

// Load собирает каталог из таблиц БД и валидирует его. Таблицы независимы,
// поэтому читаем их параллельно.
func Load(ctx context.Context, st CatalogStorage) (*Catalog, error) {
	const op = "catalog.Load"

	var (
		items        []storage.ItemRow
		vehicles     []storage.VehicleRow
		prices       []storage.VehiclePriceRow
		floorPrices  []storage.FloorPriceRow
		buckets      []storage.TonnageBucketRow
		storageRates []storage.StorageRateRow
		longDistance []storage.LongDistanceRow
		specialDays  []storage.SpecialDayRow
		settings     []storage.SettingRow
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = st.GetItems(gCtx)
		if err != nil {
			return fmt.Errorf("items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		vehicles, err = st.GetVehicles(gCtx)
		if err != nil {
			return fmt.Errorf("vehicles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		prices, err = st.GetVehiclePrices(gCtx)
		if err != nil {
			return fmt.Errorf("vehicle prices: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		floorPrices, err = st.GetFloorPrices(gCtx)
		if err != nil {
			return fmt.Errorf("floor prices: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		buckets, err = st.GetTonnageBuckets(gCtx)
		if err != nil {
			return fmt.Errorf("tonnage buckets: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		storageRates, err = st.GetStorageRates(gCtx)
		if err != nil {
			return fmt.Errorf("storage rates: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		longDistance, err = st.GetLongDistanceTariffs(gCtx)
		if err != nil {
			return fmt.Errorf("long distance tariffs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		specialDays, err = st.GetSpecialDays(gCtx)
		if err != nil {
			return fmt.Errorf("special days: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		settings, err = st.GetSettings(gCtx)
		if err != nil {
			return fmt.Errorf("settings: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	c := assemble(items, vehicles, prices, floorPrices, buckets, storageRates, longDistance, specialDays, settings)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func assemble(
	items []storage.ItemRow,
	vehicles []storage.VehicleRow,
	prices []storage.VehiclePriceRow,
	floorPrices []storage.FloorPriceRow,
	buckets []storage.TonnageBucketRow,
	storageRates []storage.StorageRateRow,
	longDistance []storage.LongDistanceRow,
	specialDays []storage.SpecialDayRow,
	settings []storage.SettingRow,
) *Catalog {
	c := &Catalog{
		Items:        make(map[MoveCategory][]Item),
		Prices:       make(map[MoveCategory]map[string]VehiclePrice),
		FloorPrices:  make(map[string]map[string]int),
		StorageRates: make(map[StorageType]int),
		LongDistance: make(map[string]int),
	}

	for _, row := range items {
		cat := MoveCategory(row.Category)
		c.Items[cat] = append(c.Items[cat], Item{
			Name:     row.Name,
			VolumeM3: row.VolumeM3,
			WeightKg: row.WeightKg,
		})
	}

	for _, row := range vehicles {
		c.Vehicles = append(c.Vehicles, Vehicle{
			Name:             row.Name,
			CapacityM3:       row.CapacityM3,
			WeightCapacityKg: row.WeightCapacityKg,
		})
	}

	for _, row := range prices {
		cat := MoveCategory(row.Category)
		if c.Prices[cat] == nil {
			c.Prices[cat] = make(map[string]VehiclePrice)
		}
		c.Prices[cat][row.Vehicle] = VehiclePrice{
			Vehicle:   row.Vehicle,
			BasePrice: row.BasePrice,
			BaseMen:   row.BaseMen,
			BaseWomen: row.BaseWomen,
		}
	}

	seenRange := make(map[string]bool)
	for _, row := range floorPrices {
		if !seenRange[row.RangeKey] {
			seenRange[row.RangeKey] = true
			c.FloorRanges = append(c.FloorRanges, FloorRange{
				Key: row.RangeKey,
				Min: row.MinFloor,
				Max: row.MaxFloor,
			})
		}
		if c.FloorPrices[row.RangeKey] == nil {
			c.FloorPrices[row.RangeKey] = make(map[string]int)
		}
		c.FloorPrices[row.RangeKey][row.Bucket] = row.Price
	}
	sort.Slice(c.FloorRanges, func(i, j int) bool {
		return c.FloorRanges[i].Min < c.FloorRanges[j].Min
	})

	for _, row := range buckets {
		c.TonnageBuckets = append(c.TonnageBuckets, TonnageBucket{
			Key:       row.Bucket,
			Threshold: row.Threshold,
		})
		if row.IsDefault {
			c.DefaultBucket = row.Bucket
		}
	}
	sort.Slice(c.TonnageBuckets, func(i, j int) bool {
		return c.TonnageBuckets[i].Threshold > c.TonnageBuckets[j].Threshold
	})

	for _, row := range storageRates {
		c.StorageRates[StorageType(row.Type)] = row.RatePerDay
	}

	for _, row := range longDistance {
		c.LongDistance[row.Route] = row.Price
	}

	sort.Slice(specialDays, func(i, j int) bool { return specialDays[i].Ord < specialDays[j].Ord })
	for _, row := range specialDays {
		c.SpecialDays = append(c.SpecialDays, SpecialDay{
			FormKey: row.FormKey,
			Label:   row.Label,
			Price:   row.Price,
		})
	}

	for _, s := range settings {
		switch s.Name {
		case "loading_efficiency":
			c.LoadingEfficiency = s.Value
		case "sky_base_price":
			c.SkyBasePrice = int(s.Value)
		case "sky_hour_rate":
			c.SkyHourRate = int(s.Value)
		case "add_man_cost":
			c.AddManCost = int(s.Value)
		case "add_woman_cost":
			c.AddWomanCost = int(s.Value)
		case "waste_per_ton":
			c.WastePerTon = int(s.Value)
		case "electricity_flat_under_30":
			c.Electricity.FlatUnder30 = int(s.Value)
		case "electricity_per_30_days":
			c.Electricity.Per30Days = int(s.Value)
		case "electricity_per_day":
			c.Electricity.PerDay = int(s.Value)
		case "vat_percent":
			c.VATPercent = s.Value
		case "card_percent":
			c.CardPercent = s.Value
		}
	}

	return c
}
