package catalog

var baseProducts = []Product{
	{
		ID: "vv001", Name: "Velvet Noir Blazer", Category: CategoryFormal, Price: 3200,
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"#1c1c1c", "#3a3a3a"},
		Description: "Tailored velvet blazer with peak lapels and a soft satin lining for evening statements.",
		Tags:        []string{"new", "limited", "formal"},
		Image:       "assets/Pics%20Of%20velvelt/Formal%20Wear/Men/1.jpg",
	},
	{
		ID: "vv002", Name: "Satin Midnight Gown", Category: CategoryFormal, Price: 4100,
		Sizes:       []string{"S", "M", "L"},
		Colors:      []string{"#111111", "#2b2b2b"},
		Description: "Floor-length satin gown with sculpted bodice, subtle shimmer, and side slit.",
		Tags:        []string{"evening", "luxury"},
		Image:       "assets/Pics%20Of%20velvelt/Formal%20Wear/Female/6.jpg",
	},
	{
		ID: "vv003", Name: "Urban Luxe Bomber", Category: CategoryCasual, Price: 1900,
		Sizes:       []string{"M", "L", "XL", "XXL"},
		Colors:      []string{"#0f0f0f", "#d4af37"},
		Description: "Matte bomber with quilted lining, gold zip hardware, and ribbed trims.",
		Tags:        []string{"street", "casual"},
		Image:       "assets/Pics%20Of%20velvelt/Casual%20Wear/Men/1.jpg",
	},
	{
		ID: "vv004", Name: "Signature Monogram Tee", Category: CategoryCasual, Price: 8500,
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors:      []string{"#1b1b1b", "#f5f5f5"},
		Description: "Soft cotton tee with minimal Velvet Vogue monogram and relaxed fit.",
		Tags:        []string{"best seller"},
		Image:       "assets/Pics%20Of%20velvelt/Casual%20Wear/Female/1.jpg",
	},
	{
		ID: "vv005", Name: "Sculpted Tailored Trousers", Category: CategoryFormal, Price: 2100,
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"#111111", "#4a4a4a"},
		Description: "Tapered trousers with pressed creases, hidden closure, and stretch comfort.",
		Tags:        []string{"tailored"},
		Image:       "assets/Pics%20Of%20velvelt/Formal%20Wear/Men/1.jpg",
	},
	{
		ID: "vv006", Name: "Cashmere Blend Hoodie", Category: CategoryCasual, Price: 1750,
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"#0c0c0c", "#bdbdbd"},
		Description: "Featherlight hoodie in cashmere blend with tonal drawcords and kangaroo pocket.",
		Tags:        []string{"loungewear"},
		Image:       "assets/Pics%20Of%20velvelt/Casual%20Wear/Female/2.jpg",
	},
	{
		ID: "vv007", Name: "Minimalist Leather Belt", Category: CategoryAccessories, Price: 1200,
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"#0b0b0b", "#d4af37"},
		Description: "Full-grain leather belt with brushed gold buckle and edge painting.",
		Tags:        []string{"accessory"},
		Image:       "assets/Acecesories.jpg",
	},
	{
		ID: "vv008", Name: "Aurum Statement Earrings", Category: CategoryAccessories, Price: 1400,
		Sizes:       []string{"One Size"},
		Colors:      []string{"#d4af37"},
		Description: "Sculptural gold-tone earrings with mirror polish and hypoallergenic posts.",
		Tags:        []string{"jewelry"},
		Image:       "assets/Acecesories.jpg",
	},
	{
		ID: "vv009", Name: "Velour Track Set", Category: CategoryCasual, Price: 2200,
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors:      []string{"#161616", "#343434"},
		Description: "Matching velour jacket and pants with piping detail and relaxed silhouette.",
		Tags:        []string{"set", "new"},
		Image:       "assets/Pics%20Of%20velvelt/Casual%20Wear/Men/2.jpg",
	},
	{
		ID: "vv010", Name: "Double-Breasted Overcoat", Category: CategoryFormal, Price: 3600,
		Sizes:       []string{"M", "L", "XL"},
		Colors:      []string{"#0a0a0a"},
		Description: "Longline wool-cashmere coat with peak lapels and silk pocketing.",
		Tags:        []string{"outerwear"},
		Image:       "assets/Pics%20Of%20velvelt/Formal%20Wear/Female/2.jpg",
	},
	{
		ID: "vv011", Name: "Quilted Weekender Bag", Category: CategoryAccessories, Price: 2600,
		Sizes:       []string{"One Size"},
		Colors:      []string{"#0d0d0d"},
		Description: "Spacious weekender with quilted body, gold zips, and detachable strap.",
		Tags:        []string{"travel"},
		Image:       "assets/Acecesories.jpg",
	},
	{
		ID: "vv012", Name: "Silk Neck Scarf", Category: CategoryAccessories, Price: 9500,
		Sizes:       []string{"One Size"},
		Colors:      []string{"#d4af37", "#ffffff"},
		Description: "Pure silk scarf with hand-rolled edges and subtle monogram print.",
		Tags:        []string{"silk", "accessory"},
		Image:       "assets/Acecesories.jpg",
	},
}

// BaseCatalog returns a copy of the bundled catalog.
func BaseCatalog() []Product {
	out := make([]Product, len(baseProducts))
	for i, p := range baseProducts {
		out[i] = p.Clone()
	}
	return out
}
