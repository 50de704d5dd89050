package param

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	schemaparam "github.com/davidahmann/paramdump/core/schema/v1/param"
)

const (
	kindString  = "string"
	kindInteger = "integer"
	kindBoolean = "boolean"
	kindObject  = "object"
	kindArray   = "array"
)

// DecodeError reports the first field whose value does not have the shape
// the descriptor requires.
type DecodeError struct {
	Path     string
	Expected string
	Got      string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Path, e.Expected, e.Got)
}

// Decode maps a generic JSON document onto a Descriptor. Decoding stops at the
// first mismatch and no partial descriptor is returned.
func Decode(doc map[string]any) (schemaparam.Descriptor, error) {
	d := &decoder{}
	root := d.object("", doc)
	descriptor := decodeDescriptor(root)
	if d.err != nil {
		return schemaparam.Descriptor{}, shapeError(d.err)
	}
	return descriptor, nil
}

// DecodeAgeLevel decodes an ageLevel object on its own.
func DecodeAgeLevel(value any) (schemaparam.AgeLevel, error) {
	d := &decoder{}
	ageLevel := decodeAgeLevel(d, "ageLevel", value)
	if d.err != nil {
		return schemaparam.AgeLevel{}, shapeError(d.err)
	}
	return ageLevel, nil
}

// DecodeLocalizedParameters decodes a localizedParameters object on its own.
func DecodeLocalizedParameters(value any) (schemaparam.LocalizedParameters, error) {
	d := &decoder{}
	localized := decodeLocalizedParameters(d, "localizedParameters", value)
	if d.err != nil {
		return schemaparam.LocalizedParameters{}, shapeError(d.err)
	}
	return localized, nil
}

func decodeDescriptor(root *object) schemaparam.Descriptor {
	return schemaparam.Descriptor{
		AddCont:                       decodeAddCont(root.object("addcont")),
		AgeLevel:                      decodeAgeLevel(root.d, root.child("ageLevel"), root.raw("ageLevel", kindObject)),
		Amm:                           decodeAmm(root.object("amm")),
		ApplicationCategoryType:       root.integer("applicationCategoryType"),
		ApplicationDrmType:            root.str("applicationDrmType"),
		Attribute:                     root.integer("attribute"),
		Attribute2:                    root.integer("attribute2"),
		Attribute3:                    root.integer("attribute3"),
		ConceptID:                     root.str("conceptId"),
		ContentBadgeType:              root.integer("contentBadgeType"),
		ContentID:                     root.str("contentId"),
		ContentVersion:                root.str("contentVersion"),
		DownloadDataSize:              root.integer("downloadDataSize"),
		GameIntent:                    decodeGameIntent(root.object("gameIntent")),
		Kernel:                        decodeKernel(root.object("kernel")),
		LocalizedParameters:           decodeLocalizedParameters(root.d, root.child("localizedParameters"), root.raw("localizedParameters", kindObject)),
		MasterVersion:                 root.str("masterVersion"),
		OriginContentVersion:          root.str("originContentVersion"),
		PubTools:                      decodePubTools(root.object("pubtools")),
		RequiredSystemSoftwareVersion: root.str("requiredSystemSoftwareVersion"),
		SDKVersion:                    root.str("sdkVersion"),
		TargetContentVersion:          root.str("targetContentVersion"),
		TitleID:                       root.str("titleId"),
		UserDefinedParam1:             root.integer("userDefinedParam1"),
		UserDefinedParam2:             root.integer("userDefinedParam2"),
		UserDefinedParam3:             root.integer("userDefinedParam3"),
		UserDefinedParam4:             root.integer("userDefinedParam4"),
		VersionFileURI:                root.str("versionFileUri"),
	}
}

func decodeAddCont(obj *object) schemaparam.AddCont {
	items := obj.array("serviceIdForSharing")
	ids := make([]string, 0, len(items))
	for i, item := range items {
		ids = append(ids, obj.d.asString(indexPath(obj.child("serviceIdForSharing"), i), item))
	}
	return schemaparam.AddCont{ServiceIDForSharing: ids}
}

func decodeAgeLevel(d *decoder, path string, value any) schemaparam.AgeLevel {
	obj := d.asObject(path, value)
	ageLevel := schemaparam.AgeLevel{
		DefaultRating:  obj.integer(schemaparam.DefaultRatingKey),
		CountryRatings: make(map[string]int, len(obj.values)),
	}
	for _, country := range sortedKeys(obj.values) {
		if country == schemaparam.DefaultRatingKey {
			continue
		}
		ageLevel.CountryRatings[country] = d.asInt(obj.child(country), obj.values[country])
	}
	return ageLevel
}

func decodeAmm(obj *object) schemaparam.Amm {
	return schemaparam.Amm{
		PagetableMemorySizeInMib: obj.integer("pagetableMemorySizeInMib"),
		VaRangeInGib:             obj.integer("vaRangeInGib"),
	}
}

func decodeGameIntent(obj *object) schemaparam.GameIntent {
	items := obj.array("permittedIntents")
	intents := make([]schemaparam.PermittedIntent, 0, len(items))
	for i, item := range items {
		entry := obj.d.asObject(indexPath(obj.child("permittedIntents"), i), item)
		intents = append(intents, schemaparam.PermittedIntent{IntentType: entry.str("intentType")})
	}
	return schemaparam.GameIntent{PermittedIntents: intents}
}

func decodeKernel(obj *object) schemaparam.Kernel {
	return schemaparam.Kernel{
		CPUPageTableSize:   obj.integer("cpuPageTableSize"),
		FlexibleMemorySize: obj.integer("flexibleMemorySize"),
		GPUPageTableSize:   obj.integer("gpuPageTableSize"),
	}
}

func decodeLocalizedParameters(d *decoder, path string, value any) schemaparam.LocalizedParameters {
	obj := d.asObject(path, value)
	localized := schemaparam.LocalizedParameters{
		DefaultLanguage: obj.str(schemaparam.DefaultLanguageKey),
		Languages:       make(map[string]schemaparam.LanguageEntry, len(obj.values)),
	}
	for _, language := range sortedKeys(obj.values) {
		if language == schemaparam.DefaultLanguageKey {
			continue
		}
		entry := d.asObject(obj.child(language), obj.values[language])
		localized.Languages[language] = schemaparam.LanguageEntry{TitleName: entry.str("titleName")}
	}
	return localized
}

func decodePubTools(obj *object) schemaparam.PubTools {
	return schemaparam.PubTools{
		CreationDate: obj.str("creationDate"),
		LoudnessSnd0: obj.str("loudnessSnd0"),
		Submission:   obj.boolean("submission"),
		ToolVersion:  obj.str("toolVersion"),
	}
}

// decoder keeps the first failure; every read after it yields a zero value.
type decoder struct {
	err *DecodeError
}

func (d *decoder) fail(path, expected string, value any, present bool) {
	if d.err != nil {
		return
	}
	got := "missing"
	if present {
		got = describe(value)
	}
	d.err = &DecodeError{Path: path, Expected: expected, Got: got}
}

func (d *decoder) object(path string, values map[string]any) *object {
	return &object{d: d, path: path, values: values}
}

func (d *decoder) asObject(path string, value any) *object {
	if d.err != nil {
		return d.object(path, nil)
	}
	values, ok := value.(map[string]any)
	if !ok {
		d.fail(path, kindObject, value, true)
		return d.object(path, nil)
	}
	return d.object(path, values)
}

func (d *decoder) asString(path string, value any) string {
	if d.err != nil {
		return ""
	}
	text, ok := value.(string)
	if !ok {
		d.fail(path, kindString, value, true)
	}
	return text
}

func (d *decoder) asBool(path string, value any) bool {
	if d.err != nil {
		return false
	}
	flag, ok := value.(bool)
	if !ok {
		d.fail(path, kindBoolean, value, true)
	}
	return flag
}

func (d *decoder) asInt(path string, value any) int {
	if d.err != nil {
		return 0
	}
	number, ok := toInt(value)
	if !ok {
		d.fail(path, kindInteger, value, true)
		return 0
	}
	return number
}

func (d *decoder) asArray(path string, value any) []any {
	if d.err != nil {
		return nil
	}
	items, ok := value.([]any)
	if !ok {
		d.fail(path, kindArray, value, true)
	}
	return items
}

type object struct {
	d      *decoder
	path   string
	values map[string]any
}

func (o *object) child(key string) string {
	if o.path == "" {
		return key
	}
	return o.path + "." + key
}

// raw returns the value at key, recording a missing-field failure when absent.
func (o *object) raw(key, expected string) any {
	if o.d.err != nil {
		return nil
	}
	value, ok := o.values[key]
	if !ok {
		o.d.fail(o.child(key), expected, nil, false)
		return nil
	}
	return value
}

func (o *object) str(key string) string {
	value := o.raw(key, kindString)
	return o.d.asString(o.child(key), value)
}

func (o *object) integer(key string) int {
	value := o.raw(key, kindInteger)
	return o.d.asInt(o.child(key), value)
}

func (o *object) boolean(key string) bool {
	value := o.raw(key, kindBoolean)
	return o.d.asBool(o.child(key), value)
}

func (o *object) object(key string) *object {
	value := o.raw(key, kindObject)
	return o.d.asObject(o.child(key), value)
}

func (o *object) array(key string) []any {
	value := o.raw(key, kindArray)
	return o.d.asArray(o.child(key), value)
}

// sortedKeys fixes the visiting order so the reported failure is stable.
func sortedKeys(values map[string]any) []string {
	return slices.Sorted(maps.Keys(values))
}

func indexPath(path string, index int) string {
	return path + "[" + strconv.Itoa(index) + "]"
}

// toInt accepts integral numbers within the 32-bit signed range, including
// integral floats such as 3.0.
func toInt(value any) (int, bool) {
	var f float64
	switch number := value.(type) {
	case int:
		return number, number >= math.MinInt32 && number <= math.MaxInt32
	case int64:
		return int(number), number >= math.MinInt32 && number <= math.MaxInt32
	case json.Number:
		if i, err := number.Int64(); err == nil {
			return int(i), i >= math.MinInt32 && i <= math.MaxInt32
		}
		parsed, err := number.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = number
	default:
		return 0, false
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func describe(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return kindString
	case bool:
		return kindBoolean
	case json.Number:
		return "number " + v.String()
	case float64:
		return "number " + strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return "number " + strconv.Itoa(v)
	case int64:
		return "number " + strconv.FormatInt(v, 10)
	case map[string]any:
		return kindObject
	case []any:
		return kindArray
	default:
		return fmt.Sprintf("%T", value)
	}
}
