package core

// MetadataRecord is the JSON document marketplaces fetch for a token.
//
// Attributes is omitted when empty: the Land records carry none, Power Cube
// records carry exactly one.
type MetadataRecord struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Attributes  []Trait `json:"attributes,omitempty"`
	ExternalURL string  `json:"external_url"`
}

// Trait is a single entry of a record's attributes list.
type Trait struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// ExternalURL is the project site linked from every record.
const ExternalURL = "http://191.252.179.221"

// Image locations. The Land images are published without a scheme; clients
// already depend on that form.
const (
	MiniLandImage   = "191.252.179.221:3000/nft/images/mini-land.gif"
	MediumLandImage = "191.252.179.221:3000/nft/images/medium-land.gif"
	PowerCubeImage  = "http://191.252.179.221:3000/nft/images/powercube.gif"
)

// HashPowerTrait is the trait type attached to Power Cube records.
const HashPowerTrait = "Hash Power"

// MiniLand returns the record served for every valid id on /nft/{id}.
func MiniLand() MetadataRecord {
	return MetadataRecord{
		Name:        "Mini Land",
		Description: "Hold 5x earn 10 $RON/day Hold 10x earn 25 $RON/day Hold 20x earn 55 $RON/day",
		Image:       MiniLandImage,
		ExternalURL: ExternalURL,
	}
}

// MediumLand returns the record served for every valid id on /nft/medium/{id}.
func MediumLand() MetadataRecord {
	return MetadataRecord{
		Name:        "Medium Land",
		Description: "Hold 5x earn 20 $RON/day Hold 10x earn 50 $RON/day Hold 20x earn 110 $RON/day",
		Image:       MediumLandImage,
		ExternalURL: ExternalURL,
	}
}

// powerCubeRecord builds a Power Cube record from parsed CSV values.
func powerCubeRecord(name, description, hashPower string) MetadataRecord {
	return MetadataRecord{
		Name:        name,
		Description: description,
		Image:       PowerCubeImage,
		Attributes: []Trait{
			{TraitType: HashPowerTrait, Value: hashPower},
		},
		ExternalURL: ExternalURL,
	}
}
