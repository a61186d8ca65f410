package wholesale

// CatalogItem is one line of the wholesale price list
type CatalogItem struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Pack  string `json:"pack"`
	Note  string `json:"note"`
}

// Catalog is the fixed wholesale price list shown to verified
// customers. Prices are quoted per pound or per unit, not in cents,
// because wholesale orders are negotiated offline.
var Catalog = []CatalogItem{
	{
		Name:  "Prime Ribeye, 0x1",
		Price: "$13.80/lb",
		Pack:  "12 x 12oz trays",
		Note:  "Hand-trimmed, ready for service",
	},
	{
		Name:  "Packer Brisket",
		Price: "$4.90/lb",
		Pack:  "~60lb case",
		Note:  "USDA Choice & Prime on rotation",
	},
	{
		Name:  "Airline Chicken Breast",
		Price: "$4.15/lb",
		Pack:  "2 x 10lb bags",
		Note:  "Skin-on, frenched wing",
	},
	{
		Name:  "Atlantic Salmon Sides",
		Price: "$8.20/lb",
		Pack:  "6-7lb average",
		Note:  "Pin-boned, trimmed tail",
	},
	{
		Name:  "Smoked Kielbasa",
		Price: "$5.40/lb",
		Pack:  "15lb case",
		Note:  "House recipe, natural casing",
	},
	{
		Name:  "Wagyu Burgers, 6oz",
		Price: "$3.65/patty",
		Pack:  "40 patties",
		Note:  "80/20 blend, parchment stacked",
	},
}
