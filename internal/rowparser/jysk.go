package rowparser

import "github.com/Michwuanquana/vybav.it-sub000/internal/catalog"

// JYSK exports come from a feed generator whose column names changed across
// versions; older batches use the Danish-derived names.
var (
	jyskNameColumns   = []string{"product_name", "name", "item_name", "title", "nazev", "beskrivelse"}
	jyskSeriesColumns = []string{"collection", "series", "line", "kolekce", "serie"}
	jyskStockColumns  = []string{"availability", "stock_status", "stock", "dostupnost", "lager"}
	jyskImageColumns  = []string{"image_url", "image", "picture", "obrazek", "billede"}
	jyskExtraColumns  = []string{"additional_images", "images", "gallery", "billeder"}
	jyskURLColumns    = []string{"product_url", "url", "deeplink", "link"}
)

func (p *Parser) parseJysk(row RawRow) *catalog.Product {
	name := pickName(row, jyskNameColumns)
	if name == "" {
		return nil
	}

	return p.buildProduct(
		catalog.BrandJysk,
		row,
		name,
		row.First(jyskSeriesColumns...),
		row.First(jyskStockColumns...),
		row.First(jyskImageColumns...),
		row.First(jyskURLColumns...),
		splitList(row.First(jyskExtraColumns...)),
	)
}
