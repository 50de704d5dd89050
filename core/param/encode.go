package param

import (
	schemaparam "github.com/davidahmann/paramdump/core/schema/v1/param"
)

// Encode is the inverse of Decode. Nil slices encode as empty arrays and the
// reserved keys are written inline into their tables.
func Encode(descriptor schemaparam.Descriptor) map[string]any {
	return map[string]any{
		"addcont":                       encodeAddCont(descriptor.AddCont),
		"ageLevel":                      EncodeAgeLevel(descriptor.AgeLevel),
		"amm":                           encodeAmm(descriptor.Amm),
		"applicationCategoryType":       descriptor.ApplicationCategoryType,
		"applicationDrmType":            descriptor.ApplicationDrmType,
		"attribute":                     descriptor.Attribute,
		"attribute2":                    descriptor.Attribute2,
		"attribute3":                    descriptor.Attribute3,
		"conceptId":                     descriptor.ConceptID,
		"contentBadgeType":              descriptor.ContentBadgeType,
		"contentId":                     descriptor.ContentID,
		"contentVersion":                descriptor.ContentVersion,
		"downloadDataSize":              descriptor.DownloadDataSize,
		"gameIntent":                    encodeGameIntent(descriptor.GameIntent),
		"kernel":                        encodeKernel(descriptor.Kernel),
		"localizedParameters":           EncodeLocalizedParameters(descriptor.LocalizedParameters),
		"masterVersion":                 descriptor.MasterVersion,
		"originContentVersion":          descriptor.OriginContentVersion,
		"pubtools":                      encodePubTools(descriptor.PubTools),
		"requiredSystemSoftwareVersion": descriptor.RequiredSystemSoftwareVersion,
		"sdkVersion":                    descriptor.SDKVersion,
		"targetContentVersion":          descriptor.TargetContentVersion,
		"titleId":                       descriptor.TitleID,
		"userDefinedParam1":             descriptor.UserDefinedParam1,
		"userDefinedParam2":             descriptor.UserDefinedParam2,
		"userDefinedParam3":             descriptor.UserDefinedParam3,
		"userDefinedParam4":             descriptor.UserDefinedParam4,
		"versionFileUri":                descriptor.VersionFileURI,
	}
}

// EncodeAgeLevel writes every country rating plus the default rating under
// the "default" key. A country literally named "default" is overwritten.
func EncodeAgeLevel(ageLevel schemaparam.AgeLevel) map[string]any {
	out := make(map[string]any, len(ageLevel.CountryRatings)+1)
	for country, rating := range ageLevel.CountryRatings {
		out[country] = rating
	}
	out[schemaparam.DefaultRatingKey] = ageLevel.DefaultRating
	return out
}

// EncodeLocalizedParameters writes every language entry plus the default
// language under the "defaultLanguage" key.
func EncodeLocalizedParameters(localized schemaparam.LocalizedParameters) map[string]any {
	out := make(map[string]any, len(localized.Languages)+1)
	for language, entry := range localized.Languages {
		out[language] = map[string]any{"titleName": entry.TitleName}
	}
	out[schemaparam.DefaultLanguageKey] = localized.DefaultLanguage
	return out
}

func encodeAddCont(addCont schemaparam.AddCont) map[string]any {
	ids := make([]any, 0, len(addCont.ServiceIDForSharing))
	for _, id := range addCont.ServiceIDForSharing {
		ids = append(ids, id)
	}
	return map[string]any{"serviceIdForSharing": ids}
}

func encodeAmm(amm schemaparam.Amm) map[string]any {
	return map[string]any{
		"pagetableMemorySizeInMib": amm.PagetableMemorySizeInMib,
		"vaRangeInGib":             amm.VaRangeInGib,
	}
}

func encodeGameIntent(gameIntent schemaparam.GameIntent) map[string]any {
	intents := make([]any, 0, len(gameIntent.PermittedIntents))
	for _, intent := range gameIntent.PermittedIntents {
		intents = append(intents, map[string]any{"intentType": intent.IntentType})
	}
	return map[string]any{"permittedIntents": intents}
}

func encodeKernel(kernel schemaparam.Kernel) map[string]any {
	return map[string]any{
		"cpuPageTableSize":   kernel.CPUPageTableSize,
		"flexibleMemorySize": kernel.FlexibleMemorySize,
		"gpuPageTableSize":   kernel.GPUPageTableSize,
	}
}

func encodePubTools(pubTools schemaparam.PubTools) map[string]any {
	return map[string]any{
		"creationDate": pubTools.CreationDate,
		"loudnessSnd0": pubTools.LoudnessSnd0,
		"submission":   pubTools.Submission,
		"toolVersion":  pubTools.ToolVersion,
	}
}
