// Package scenarios holds param.json documents shared by tests across packages.
package scenarios

import (
	schemaparam "github.com/davidahmann/paramdump/core/schema/v1/param"
)

// FullParamJSON populates every field, with several ratings and languages.
const FullParamJSON = `{
  "addcont": {
    "serviceIdForSharing": [
      "UP9000-PPSA01284_00",
      "EP9000-PPSA01285_00",
      "JP9000-PPSA01286_00"
    ]
  },
  "ageLevel": {
    "US": 13,
    "JP": 12,
    "DE": 16,
    "default": 13
  },
  "amm": {
    "pagetableMemorySizeInMib": 64,
    "vaRangeInGib": 128
  },
  "applicationCategoryType": 0,
  "applicationDrmType": "standard",
  "attribute": 0,
  "attribute2": 2,
  "attribute3": 4,
  "conceptId": "10000123",
  "contentBadgeType": 1,
  "contentId": "UP9000-PPSA01284_00-ASTROSPLAYROOM00",
  "contentVersion": "01.000.002",
  "downloadDataSize": 1024,
  "gameIntent": {
    "permittedIntents": [
      {"intentType": "launchActivity"},
      {"intentType": "joinSession"}
    ]
  },
  "kernel": {
    "cpuPageTableSize": 32,
    "flexibleMemorySize": 512,
    "gpuPageTableSize": 16
  },
  "localizedParameters": {
    "defaultLanguage": "en-US",
    "en-US": {"titleName": "Astro's Playroom"},
    "ja-JP": {"titleName": "Astro Playroom JP"},
    "fr-FR": {"titleName": "Astro's Playroom FR"}
  },
  "masterVersion": "01.00",
  "originContentVersion": "01.000.000",
  "pubtools": {
    "creationDate": "2020-10-01 12:00:00",
    "loudnessSnd0": "-23.0",
    "submission": true,
    "toolVersion": "1.30.00.05-00.00.00.0.1"
  },
  "requiredSystemSoftwareVersion": "0x0114000000000000",
  "sdkVersion": "0x0200000000000000",
  "targetContentVersion": "01.000.002",
  "titleId": "PPSA01284",
  "userDefinedParam1": 0,
  "userDefinedParam2": 0,
  "userDefinedParam3": 7,
  "userDefinedParam4": -1,
  "versionFileUri": "https://example.invalid/PPSA01284/version.xml"
}
`

// MinimalParamJSON has only the default rating, no shareable services and a
// single language.
const MinimalParamJSON = `{
  "addcont": {"serviceIdForSharing": []},
  "ageLevel": {"default": 5},
  "amm": {"pagetableMemorySizeInMib": 0, "vaRangeInGib": 0},
  "applicationCategoryType": 0,
  "applicationDrmType": "",
  "attribute": 0,
  "attribute2": 0,
  "attribute3": 0,
  "conceptId": "",
  "contentBadgeType": 0,
  "contentId": "CUSA00001",
  "contentVersion": "",
  "downloadDataSize": 0,
  "gameIntent": {"permittedIntents": []},
  "kernel": {"cpuPageTableSize": 0, "flexibleMemorySize": 0, "gpuPageTableSize": 0},
  "localizedParameters": {"en": {"titleName": "Game"}, "defaultLanguage": "en"},
  "masterVersion": "",
  "originContentVersion": "",
  "pubtools": {"creationDate": "", "loudnessSnd0": "", "submission": false, "toolVersion": ""},
  "requiredSystemSoftwareVersion": "",
  "sdkVersion": "",
  "targetContentVersion": "",
  "titleId": "",
  "userDefinedParam1": 0,
  "userDefinedParam2": 0,
  "userDefinedParam3": 0,
  "userDefinedParam4": 0,
  "versionFileUri": ""
}
`

// FullDescriptor is the typed form of FullParamJSON.
func FullDescriptor() schemaparam.Descriptor {
	return schemaparam.Descriptor{
		AddCont: schemaparam.AddCont{ServiceIDForSharing: []string{
			"UP9000-PPSA01284_00",
			"EP9000-PPSA01285_00",
			"JP9000-PPSA01286_00",
		}},
		AgeLevel: schemaparam.AgeLevel{
			CountryRatings: map[string]int{"US": 13, "JP": 12, "DE": 16},
			DefaultRating:  13,
		},
		Amm:                     schemaparam.Amm{PagetableMemorySizeInMib: 64, VaRangeInGib: 128},
		ApplicationCategoryType: 0,
		ApplicationDrmType:      "standard",
		Attribute:               0,
		Attribute2:              2,
		Attribute3:              4,
		ConceptID:               "10000123",
		ContentBadgeType:        1,
		ContentID:               "UP9000-PPSA01284_00-ASTROSPLAYROOM00",
		ContentVersion:          "01.000.002",
		DownloadDataSize:        1024,
		GameIntent: schemaparam.GameIntent{PermittedIntents: []schemaparam.PermittedIntent{
			{IntentType: "launchActivity"},
			{IntentType: "joinSession"},
		}},
		Kernel: schemaparam.Kernel{CPUPageTableSize: 32, FlexibleMemorySize: 512, GPUPageTableSize: 16},
		LocalizedParameters: schemaparam.LocalizedParameters{
			Languages: map[string]schemaparam.LanguageEntry{
				"en-US": {TitleName: "Astro's Playroom"},
				"ja-JP": {TitleName: "Astro Playroom JP"},
				"fr-FR": {TitleName: "Astro's Playroom FR"},
			},
			DefaultLanguage: "en-US",
		},
		MasterVersion:        "01.00",
		OriginContentVersion: "01.000.000",
		PubTools: schemaparam.PubTools{
			CreationDate: "2020-10-01 12:00:00",
			LoudnessSnd0: "-23.0",
			Submission:   true,
			ToolVersion:  "1.30.00.05-00.00.00.0.1",
		},
		RequiredSystemSoftwareVersion: "0x0114000000000000",
		SDKVersion:                    "0x0200000000000000",
		TargetContentVersion:          "01.000.002",
		TitleID:                       "PPSA01284",
		UserDefinedParam1:             0,
		UserDefinedParam2:             0,
		UserDefinedParam3:             7,
		UserDefinedParam4:             -1,
		VersionFileURI:                "https://example.invalid/PPSA01284/version.xml",
	}
}

// MinimalDescriptor is the typed form of MinimalParamJSON.
func MinimalDescriptor() schemaparam.Descriptor {
	return schemaparam.Descriptor{
		AddCont:    schemaparam.AddCont{ServiceIDForSharing: []string{}},
		AgeLevel:   schemaparam.AgeLevel{CountryRatings: map[string]int{}, DefaultRating: 5},
		ContentID:  "CUSA00001",
		GameIntent: schemaparam.GameIntent{PermittedIntents: []schemaparam.PermittedIntent{}},
		LocalizedParameters: schemaparam.LocalizedParameters{
			Languages:       map[string]schemaparam.LanguageEntry{"en": {TitleName: "Game"}},
			DefaultLanguage: "en",
		},
	}
}
