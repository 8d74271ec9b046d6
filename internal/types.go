package internal

// CostFields are the production cost and pricing columns shared by the
// profit analysis and product catalog sheets.
type CostFields struct {
	TopCost        *float64 `json:"topCost"`
	RouteCost      *float64 `json:"routeCost"`
	BaseCost       *float64 `json:"baseCost"`
	NestFoldCost   *float64 `json:"nestFoldCost"`
	AsbGnLcCost1   *float64 `json:"asbGnLcCost1"`
	AsbGnLcCost2   *float64 `json:"asbGnLcCost2"`
	AssemblyCost   *float64 `json:"assemblyCost"`
	LFCost         *float64 `json:"lfCost"`
	FreightInCost  *float64 `json:"freightInCost"`
	PackagingCost  *float64 `json:"packagingCost"`
	TotalCost      *float64 `json:"totalCost"`
	FreightOutPct  *float64 `json:"freightOutPct"`
	GPM            *float64 `json:"gpm"`
	Commission     *float64 `json:"commission"`
	StandardPrice  *float64 `json:"standardPrice"`
	NetProfit      *float64 `json:"netProfit"`
	ListPrice      *float64 `json:"listPrice"`
	DiscountFactor *float64 `json:"discountFactor"`
	NetPrice       *float64 `json:"netPrice"`
	NewNetProfit   *float64 `json:"newNetProfit"`
}

// DiscountTiers are list price at each cascading dealer discount. All are
// nil unless list price is positive.
type DiscountTiers struct {
	Price5020   *float64 `json:"price_50_20"`
	Price50205  *float64 `json:"price_50_20_5"`
	Price502010 *float64 `json:"price_50_20_10"`
	Price502015 *float64 `json:"price_50_20_15"`
	Price502020 *float64 `json:"price_50_20_20"`
}

type ProfitRecord struct {
	Tag    string   `json:"tag"`
	Qty    *float64 `json:"qty"`
	SKU    string   `json:"sku"`
	Series string   `json:"series"`
	CostFields
	Notes string `json:"notes"`
	DiscountTiers
}

type CatalogRecord struct {
	SKU        string   `json:"sku"`
	Series     string   `json:"series"`
	Shape      string   `json:"shape"`
	ShapeName  string   `json:"shapeName"`
	Size       string   `json:"size"`
	BaseType   string   `json:"baseType"`
	Special    bool     `json:"special,omitempty"`
	PostConfig *int     `json:"postConfig,omitempty"`
	Options    []string `json:"options,omitempty"`
	CostFields
	EdgeCost *float64 `json:"edgeCost"`
	DiscountTiers
	Notes string `json:"notes"`
}

type QueueEntry struct {
	RowNum           int    `json:"rowNum"`
	EmailFrom        string `json:"emailFrom"`
	DateTime         string `json:"dateTime"`
	DateNormalized   string `json:"dateNormalized"`
	Year             int    `json:"year"`
	QuoteNumber      string `json:"quoteNumber"`
	DealerProject    string `json:"dealerProject"`
	Special          *bool  `json:"special"`
	Staff            string `json:"staff"`
	Status           string `json:"status"`
	StatusNormalized string `json:"statusNormalized"`
}

type StaffEntry struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Initials string `json:"initials"`
}

type DealerEntry struct {
	Name string `json:"name"`
}
