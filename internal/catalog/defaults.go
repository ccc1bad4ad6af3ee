package catalog

// Default — встроенный справочник. Используется в тестах и как стартовые данные
// для заполнения таблиц; боевой каталог загружается из MySQL (см. load.go).
func Default() *Catalog {
	return &Catalog{
		LoadingEfficiency: 0.8,

		Items: map[MoveCategory][]Item{
			CategoryHome: {
				{Name: "냉장고", VolumeM3: 1.2, WeightKg: 120},
				{Name: "김치냉장고", VolumeM3: 0.8, WeightKg: 90},
				{Name: "세탁기", VolumeM3: 0.6, WeightKg: 80},
				{Name: "침대(더블)", VolumeM3: 1.5, WeightKg: 70},
				{Name: "침대(싱글)", VolumeM3: 1.0, WeightKg: 50},
				{Name: "장롱", VolumeM3: 2.0, WeightKg: 100},
				{Name: "소파(3인)", VolumeM3: 1.2, WeightKg: 60},
				{Name: "책상", VolumeM3: 0.6, WeightKg: 40},
				{Name: "책장", VolumeM3: 0.5, WeightKg: 45},
				{Name: "식탁", VolumeM3: 0.7, WeightKg: 35},
				{Name: "TV", VolumeM3: 0.3, WeightKg: 20},
				{Name: "에어컨", VolumeM3: 0.4, WeightKg: 45},
				{Name: "서랍장", VolumeM3: 0.5, WeightKg: 40},
				{Name: "박스(대)", VolumeM3: 0.15, WeightKg: 15},
				{Name: "화분", VolumeM3: 0.1, WeightKg: 10},
			},
			CategoryOffice: {
				{Name: "사무용 책상", VolumeM3: 0.7, WeightKg: 45},
				{Name: "사무용 의자", VolumeM3: 0.2, WeightKg: 10},
				{Name: "회의 테이블", VolumeM3: 1.0, WeightKg: 60},
				{Name: "서류 캐비닛", VolumeM3: 0.6, WeightKg: 80},
				{Name: "복합기", VolumeM3: 0.5, WeightKg: 70},
				{Name: "파티션", VolumeM3: 0.4, WeightKg: 25},
				{Name: "금고", VolumeM3: 0.3, WeightKg: 150},
				{Name: "박스(서류)", VolumeM3: 0.1, WeightKg: 12},
			},
			CategoryOneroom: {
				{Name: "침대(싱글)", VolumeM3: 1.0, WeightKg: 50},
				{Name: "냉장고(소형)", VolumeM3: 0.5, WeightKg: 45},
				{Name: "세탁기", VolumeM3: 0.6, WeightKg: 80},
				{Name: "책상", VolumeM3: 0.6, WeightKg: 40},
				{Name: "옷행거", VolumeM3: 0.3, WeightKg: 10},
				{Name: "TV", VolumeM3: 0.3, WeightKg: 20},
				{Name: "박스(대)", VolumeM3: 0.15, WeightKg: 15},
			},
		},

		Vehicles: []Vehicle{
			{Name: "1톤 트럭", CapacityM3: 5, WeightCapacityKg: 1000},
			{Name: "2.5톤 트럭", CapacityM3: 12, WeightCapacityKg: 2500},
			{Name: "3.5톤 트럭", CapacityM3: 16, WeightCapacityKg: 3500},
			{Name: "5톤 트럭", CapacityM3: 25, WeightCapacityKg: 5000},
		},

		Prices: map[MoveCategory]map[string]VehiclePrice{
			CategoryHome: {
				"1톤 트럭":   {Vehicle: "1톤 트럭", BasePrice: 350000, BaseMen: 2, BaseWomen: 1},
				"2.5톤 트럭": {Vehicle: "2.5톤 트럭", BasePrice: 600000, BaseMen: 3, BaseWomen: 1},
				"3.5톤 트럭": {Vehicle: "3.5톤 트럭", BasePrice: 800000, BaseMen: 4, BaseWomen: 2},
				"5톤 트럭":   {Vehicle: "5톤 트럭", BasePrice: 1100000, BaseMen: 5, BaseWomen: 2},
			},
			CategoryOffice: {
				"1톤 트럭":   {Vehicle: "1톤 트럭", BasePrice: 300000, BaseMen: 2},
				"2.5톤 트럭": {Vehicle: "2.5톤 트럭", BasePrice: 550000, BaseMen: 3},
				"3.5톤 트럭": {Vehicle: "3.5톤 트럭", BasePrice: 750000, BaseMen: 4},
				"5톤 트럭":   {Vehicle: "5톤 트럭", BasePrice: 1000000, BaseMen: 5},
			},
			CategoryOneroom: {
				"1톤 트럭":   {Vehicle: "1톤 트럭", BasePrice: 250000, BaseMen: 1},
				"2.5톤 트럭": {Vehicle: "2.5톤 트럭", BasePrice: 450000, BaseMen: 2},
			},
		},

		FloorRanges: []FloorRange{
			{Key: "2-5", Min: 2, Max: 5},
			{Key: "6-10", Min: 6, Max: 10},
			{Key: "11-15", Min: 11, Max: 15},
			{Key: "16-20", Min: 16, Max: 20},
			{Key: "21-25", Min: 21, Max: 25},
		},

		FloorPrices: map[string]map[string]int{
			"2-5":   {"1t": 60000, "2.5t": 70000, "3.5t": 80000, "5t": 90000},
			"6-10":  {"1t": 70000, "2.5t": 80000, "3.5t": 90000, "5t": 100000},
			"11-15": {"1t": 80000, "2.5t": 90000, "3.5t": 100000, "5t": 110000},
			"16-20": {"1t": 90000, "2.5t": 100000, "3.5t": 120000, "5t": 140000},
			// для 5т цена не согласована, нулевая ячейка уводит расчёт на ступень по умолчанию
			"21-25": {"1t": 110000, "2.5t": 130000, "3.5t": 150000, "5t": 0},
		},

		TonnageBuckets: []TonnageBucket{
			{Key: "5t", Threshold: 5},
			{Key: "3.5t", Threshold: 3.5},
			{Key: "2.5t", Threshold: 2.5},
			{Key: "1t", Threshold: 1},
		},
		DefaultBucket: "1t",

		StorageRates: map[StorageType]int{
			StorageContainer: 13000,
			StorageIndoor:    20000,
		},
		Electricity: ElectricityRate{
			FlatUnder30: 30000,
			Per30Days:   30000,
			PerDay:      1000,
		},

		LongDistance: map[string]int{
			"수도권-강원": 200000,
			"수도권-충청": 150000,
			"수도권-전라": 250000,
			"수도권-경상": 300000,
			"제주":     500000,
		},

		SpecialDays: []SpecialDay{
			{FormKey: "date_nohand", Label: "손없는날", Price: 50000},
			{FormKey: "date_weekend", Label: "주말", Price: 30000},
			{FormKey: "date_endmonth", Label: "월말", Price: 30000},
			{FormKey: "date_beginmonth", Label: "월초", Price: 20000},
			{FormKey: "date_holiday", Label: "공휴일", Price: 50000},
		},

		SkyBasePrice: 150000,
		SkyHourRate:  50000,

		AddManCost:   150000,
		AddWomanCost: 120000,

		WastePerTon: 100000,

		VATPercent:  10,
		CardPercent: 13,
	}
}
