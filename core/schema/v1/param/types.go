package param

// Reserved keys carried inline in the ageLevel and localizedParameters objects.
const (
	DefaultRatingKey   = "default"
	DefaultLanguageKey = "defaultLanguage"
)

// Descriptor is the typed form of a param.json title descriptor.
type Descriptor struct {
	AddCont                       AddCont             `json:"addcont"`
	AgeLevel                      AgeLevel            `json:"ageLevel"`
	Amm                           Amm                 `json:"amm"`
	ApplicationCategoryType       int                 `json:"applicationCategoryType"`
	ApplicationDrmType            string              `json:"applicationDrmType"`
	Attribute                     int                 `json:"attribute"`
	Attribute2                    int                 `json:"attribute2"`
	Attribute3                    int                 `json:"attribute3"`
	ConceptID                     string              `json:"conceptId"`
	ContentBadgeType              int                 `json:"contentBadgeType"`
	ContentID                     string              `json:"contentId"`
	ContentVersion                string              `json:"contentVersion"`
	DownloadDataSize              int                 `json:"downloadDataSize"`
	GameIntent                    GameIntent          `json:"gameIntent"`
	Kernel                        Kernel              `json:"kernel"`
	LocalizedParameters           LocalizedParameters `json:"localizedParameters"`
	MasterVersion                 string              `json:"masterVersion"`
	OriginContentVersion          string              `json:"originContentVersion"`
	PubTools                      PubTools            `json:"pubtools"`
	RequiredSystemSoftwareVersion string              `json:"requiredSystemSoftwareVersion"`
	SDKVersion                    string              `json:"sdkVersion"`
	TargetContentVersion          string              `json:"targetContentVersion"`
	TitleID                       string              `json:"titleId"`
	UserDefinedParam1             int                 `json:"userDefinedParam1"`
	UserDefinedParam2             int                 `json:"userDefinedParam2"`
	UserDefinedParam3             int                 `json:"userDefinedParam3"`
	UserDefinedParam4             int                 `json:"userDefinedParam4"`
	VersionFileURI                string              `json:"versionFileUri"`
}

type AddCont struct {
	ServiceIDForSharing []string `json:"serviceIdForSharing"`
}

// AgeLevel holds per-country ratings. On the wire DefaultRating shares the
// object with the country codes under DefaultRatingKey.
type AgeLevel struct {
	CountryRatings map[string]int
	DefaultRating  int
}

type Amm struct {
	PagetableMemorySizeInMib int `json:"pagetableMemorySizeInMib"`
	VaRangeInGib             int `json:"vaRangeInGib"`
}

type GameIntent struct {
	PermittedIntents []PermittedIntent `json:"permittedIntents"`
}

type PermittedIntent struct {
	IntentType string `json:"intentType"`
}

type Kernel struct {
	CPUPageTableSize   int `json:"cpuPageTableSize"`
	FlexibleMemorySize int `json:"flexibleMemorySize"`
	GPUPageTableSize   int `json:"gpuPageTableSize"`
}

// LocalizedParameters maps language codes to titles. On the wire
// DefaultLanguage shares the object with the languages under DefaultLanguageKey.
type LocalizedParameters struct {
	Languages       map[string]LanguageEntry
	DefaultLanguage string
}

type LanguageEntry struct {
	TitleName string `json:"titleName"`
}

type PubTools struct {
	CreationDate string `json:"creationDate"`
	LoudnessSnd0 string `json:"loudnessSnd0"`
	Submission   bool   `json:"submission"`
	ToolVersion  string `json:"toolVersion"`
}
