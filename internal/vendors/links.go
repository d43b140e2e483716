// Package vendors builds distributor search and product-page URLs for
// resistor values and part numbers. It is a consumer of the encoder's
// output; no network calls happen here.
package vendors

import (
	"net/url"

	"resistcalc.circuitbench.org/internal/mpn"
)

// SearchURLs returns distributor resistor-search pages for a resistance
// in kΩ, keyed by storefront.
func SearchURLs(kohm float64) map[string]string {
	q := mpn.SearchKeyword(kohm)
	return map[string]string{
		"digikey": "https://www.digikey.com/en/products/filter/resistors/52?keywords=" + url.QueryEscape(q+" ohm"),
		"mouser":  "https://www.mouser.com/c/passive-components/resistors/?q=" + url.QueryEscape(q),
		"lcsc":    "https://www.lcsc.com/products/Resistors_52.html?q=" + url.QueryEscape(q),
	}
}

// MPNSearchURLs returns storefront search or product pages for an exact
// part number, including the Chinese-market mirrors of Mouser and
// Digi-Key.
func MPNSearchURLs(partNumber string) map[string]string {
	q := url.QueryEscape(partNumber)
	return map[string]string{
		"digikey":    "https://www.digikey.com/en/products/result?keywords=" + q,
		"mouser":     "https://www.mouser.com/ProductDetail/YAGEO/" + url.PathEscape(partNumber),
		"lcsc":       "https://www.szlcsc.com/so/s?q=" + q,
		"mouser_cn":  "https://www.mouser.cn/c/?q=" + q,
		"digikey_cn": "https://www.digikey.cn/zh/products/result?keywords=" + q,
	}
}
