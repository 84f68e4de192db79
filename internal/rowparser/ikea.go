package rowparser

import "github.com/Michwuanquana/vybav.it-sub000/internal/catalog"

// IKEA export batches drift: the same logical field shows up under different
// column names depending on which tool produced the file. Candidates are
// ordered most-recent-batch first.
var (
	ikeaNameColumns   = []string{"name", "product_name", "title", "nazev", "název", "popis", "text"}
	ikeaSeriesColumns = []string{"series", "collection", "kolekce", "rada", "řada", "produktova_rada"}
	ikeaStockColumns  = []string{"stock", "availability", "dostupnost", "sklad", "stav"}
	ikeaImageColumns  = []string{"image", "image_url", "img", "obrazek", "obrázek", "foto"}
	ikeaExtraColumns  = []string{"images", "additional_images", "dalsi_obrazky", "galerie"}
	ikeaURLColumns    = []string{"url", "product_url", "link", "odkaz"}
)

func (p *Parser) parseIkea(row RawRow) *catalog.Product {
	name := pickName(row, ikeaNameColumns)
	if name == "" {
		return nil
	}

	return p.buildProduct(
		catalog.BrandIkea,
		row,
		name,
		row.First(ikeaSeriesColumns...),
		row.First(ikeaStockColumns...),
		row.First(ikeaImageColumns...),
		row.First(ikeaURLColumns...),
		splitList(row.First(ikeaExtraColumns...)),
	)
}
