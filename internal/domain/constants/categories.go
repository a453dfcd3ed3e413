// Package constants holds fixed vocabularies shared across layers.
package constants

// Categories is the suggested set of warranty categories. Clients and the
// receipt reader pick from this list; stored values are free text.
var Categories = []string{
	"Electronics",
	"Appliances",
	"Furniture",
	"Automotive",
	"Clothing & Accessories",
	"Home & Garden",
	"Sports & Outdoors",
	"Toys & Games",
	"Health & Beauty",
	"Tools & Hardware",
	"Other",
}

// FallbackCategory is used when a receipt does not match any known category.
const FallbackCategory = "Other"

// Sort orders accepted by the warranty query bridge.
const (
	SortPurchaseDateAsc  = "PURCHASE_DATE_ASC"
	SortPurchaseDateDesc = "PURCHASE_DATE_DESC"
)

// Upload providers
const (
	StorageProviderBucket = "bucket"
	StorageProviderMinIO  = "minio"
)
