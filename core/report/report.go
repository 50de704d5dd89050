package report

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/fatih/color"
	"go.uber.org/zap"

	coreerrors "github.com/davidahmann/paramdump/core/errors"
	schemaparam "github.com/davidahmann/paramdump/core/schema/v1/param"
)

const (
	bannerRule  = "========================================"
	bannerTitle = "          PARAM.JSON CONTENTS           "

	countryKeyWidth  = 4
	languageKeyWidth = 10
)

// Section headers in render order.
const (
	SectionBasic               = "Basic Information"
	SectionApplication         = "Application Info"
	SectionAttributes          = "Attributes"
	SectionUserDefined         = "User Defined Parameters"
	SectionAddCont             = "AddCont"
	SectionAgeLevel            = "AgeLevel"
	SectionAmm                 = "Amm"
	SectionGameIntent          = "GameIntent"
	SectionKernel              = "Kernel"
	SectionLocalizedParameters = "LocalizedParameters"
	SectionPubTools            = "PubTools"
)

type Option func(*renderer)

func WithLogger(logger *zap.Logger) Option {
	return func(r *renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Render writes the descriptor report to w. Country and language tables are
// printed in ascending key order. The only failure is a write error on w.
func Render(w io.Writer, descriptor schemaparam.Descriptor, opts ...Option) error {
	r := &renderer{w: w, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}

	r.banner()
	r.section(SectionBasic, func() {
		r.quoted("contentId", descriptor.ContentID)
		r.quoted("titleId", descriptor.TitleID)
		r.quoted("conceptId", descriptor.ConceptID)
		r.quoted("contentVersion", descriptor.ContentVersion)
		r.quoted("masterVersion", descriptor.MasterVersion)
		r.quoted("originContentVersion", descriptor.OriginContentVersion)
		r.quoted("targetContentVersion", descriptor.TargetContentVersion)
		r.quoted("requiredSystemSoftwareVersion", descriptor.RequiredSystemSoftwareVersion)
		r.quoted("sdkVersion", descriptor.SDKVersion)
		r.quoted("versionFileUri", descriptor.VersionFileURI)
	})
	r.section(SectionApplication, func() {
		r.integer("applicationCategoryType", descriptor.ApplicationCategoryType)
		r.quoted("applicationDrmType", descriptor.ApplicationDrmType)
		r.integer("contentBadgeType", descriptor.ContentBadgeType)
		r.integer("downloadDataSize", descriptor.DownloadDataSize)
	})
	r.section(SectionAttributes, func() {
		r.integer("attribute", descriptor.Attribute)
		r.integer("attribute2", descriptor.Attribute2)
		r.integer("attribute3", descriptor.Attribute3)
	})
	r.section(SectionUserDefined, func() {
		r.integer("userDefinedParam1", descriptor.UserDefinedParam1)
		r.integer("userDefinedParam2", descriptor.UserDefinedParam2)
		r.integer("userDefinedParam3", descriptor.UserDefinedParam3)
		r.integer("userDefinedParam4", descriptor.UserDefinedParam4)
	})
	r.section(SectionAddCont, func() {
		r.line("  serviceIdForSharing:")
		for _, id := range descriptor.AddCont.ServiceIDForSharing {
			r.line("    - " + quote(id))
		}
	})
	r.section(SectionAgeLevel, func() {
		r.integer("default", descriptor.AgeLevel.DefaultRating)
		r.line("  countryRatings:")
		ratings := descriptor.AgeLevel.CountryRatings
		for _, country := range slices.Sorted(maps.Keys(ratings)) {
			r.line(fmt.Sprintf("    %-*s: %d", countryKeyWidth, country, ratings[country]))
		}
	})
	r.section(SectionAmm, func() {
		r.integer("pagetableMemorySizeInMib", descriptor.Amm.PagetableMemorySizeInMib)
		r.integer("vaRangeInGib", descriptor.Amm.VaRangeInGib)
	})
	r.section(SectionGameIntent, func() {
		r.line("  permittedIntents:")
		for _, intent := range descriptor.GameIntent.PermittedIntents {
			r.line("    - intentType: " + quote(intent.IntentType))
		}
	})
	r.section(SectionKernel, func() {
		r.integer("cpuPageTableSize", descriptor.Kernel.CPUPageTableSize)
		r.integer("flexibleMemorySize", descriptor.Kernel.FlexibleMemorySize)
		r.integer("gpuPageTableSize", descriptor.Kernel.GPUPageTableSize)
	})
	r.section(SectionLocalizedParameters, func() {
		r.quoted("defaultLanguage", descriptor.LocalizedParameters.DefaultLanguage)
		r.line("  languages:")
		languages := descriptor.LocalizedParameters.Languages
		for _, language := range slices.Sorted(maps.Keys(languages)) {
			r.line(fmt.Sprintf("    %-*s: %s", languageKeyWidth, language, quote(languages[language].TitleName)))
		}
	})
	r.section(SectionPubTools, func() {
		r.quoted("creationDate", descriptor.PubTools.CreationDate)
		r.quoted("loudnessSnd0", descriptor.PubTools.LoudnessSnd0)
		r.line("  submission: " + strconv.FormatBool(descriptor.PubTools.Submission))
		r.quoted("toolVersion", descriptor.PubTools.ToolVersion)
	})

	if r.err != nil {
		return coreerrors.Wrap(fmt.Errorf("write report: %w", r.err), coreerrors.CategoryIOFailure, coreerrors.CodeWriteFailed)
	}
	r.logger.Debug("report rendered", zap.Int("sections", r.sections))
	return nil
}

// renderer stops writing after the first failed write.
type renderer struct {
	w        io.Writer
	logger   *zap.Logger
	sections int
	err      error
}

func (r *renderer) banner() {
	if r.err != nil {
		return
	}
	cyan := color.New(color.FgCyan)
	for _, text := range []string{bannerRule, bannerTitle, bannerRule} {
		if _, err := cyan.Fprintln(r.w, text); err != nil {
			r.err = err
			return
		}
	}
}

// section writes a blank separator line, the header and the body.
func (r *renderer) section(name string, body func()) {
	r.line("")
	r.line(name + ":")
	body()
	if r.err == nil {
		r.sections++
		r.logger.Debug("section rendered", zap.String("section", name))
	}
}

func (r *renderer) line(text string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, text+"\n")
}

func (r *renderer) quoted(field, value string) {
	r.line("  " + field + ": " + quote(value))
}

func (r *renderer) integer(field string, value int) {
	r.line("  " + field + ": " + strconv.Itoa(value))
}

// quote wraps value in double quotes without escaping, so content prints verbatim.
func quote(value string) string {
	return `"` + value + `"`
}
