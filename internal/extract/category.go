package extract

import "strings"

// categoryRule maps a category to the keywords that select it. Rules and
// keywords are scanned in declaration order and the first substring hit
// wins, so collisions between categories are resolved deterministically by
// position in this table, not by specificity. Do not reorder.
type categoryRule struct {
	category Category
	keywords []string
}

var categoryRules = []categoryRule{
	{CategoryFoodAndDining, []string{
		"restaurant", "cafe", "coffee", "food", "pizza", "burger", "biryani",
		"dhaba", "bakery", "sweets", "juice", "kitchen", "swiggy", "zomato",
		"dining", "hotel",
	}},
	{CategoryTransportation, []string{
		"uber", "ola", "taxi", "cab", "petrol", "diesel", "fuel", "parking",
		"metro", "irctc", "railway", "bus", "toll", "rapido",
	}},
	{CategoryShopping, []string{
		"mart", "store", "shop", "mall", "amazon", "flipkart", "myntra",
		"retail", "fashion", "bazaar", "electronics",
	}},
	{CategoryHealthcare, []string{
		"pharmacy", "medical", "hospital", "clinic", "chemist", "medicine",
		"apollo", "diagnostic", "lab",
	}},
	{CategoryUtilities, []string{
		"electricity", "water", "gas", "recharge", "broadband", "internet",
		"mobile", "airtel", "jio", "postpaid", "prepaid",
	}},
	{CategoryEntertainment, []string{
		"movie", "cinema", "pvr", "inox", "bookmyshow", "netflix", "game",
		"concert", "theatre",
	}},
}

// Categorize maps merchant and item text to a spending category. It is a
// total function: any input, including empty strings, yields a category,
// with CategoryOthers as the fallback.
func Categorize(merchant string, items []string) Category {
	search := strings.ToLower(merchant + " " + strings.Join(items, " "))
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(search, keyword) {
				return rule.category
			}
		}
	}
	return CategoryOthers
}
