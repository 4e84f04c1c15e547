package hebrew

import "strings"

// Mask 词条的语法描述掩码, 位定义与 hspell 保持一致
type Mask uint32

// 词性
const (
	DNoun     Mask = 1
	DVerb     Mask = 2
	DAdj      Mask = 3
	DTypeMask Mask = 3
)

// 性
const (
	DMasculine  Mask = 4
	DFeminine   Mask = 8
	DGenderMask Mask = 12
)

// 人称
const (
	DFirst   Mask = 16
	DSecond  Mask = 32
	DThird   Mask = 48
	DGufMask Mask = 48
)

// 数
const (
	DSingular Mask = 64
	DDouble   Mask = 128
	DPlural   Mask = 192
	DNumMask  Mask = 192
)

// 时态与语气
const (
	DInfinitive  Mask = 256
	DPast        Mask = 512
	DPresent     Mask = 768
	DFuture      Mask = 1024
	DImperative  Mask = 1280
	DBInfinitive Mask = 1536
	DTenseMask   Mask = 1792
)

// 代词后缀 (物主或宾语)
const (
	DOMasculine  Mask = 2048
	DOFeminine   Mask = 4096
	DOGenderMask Mask = 6144
	DOFirst      Mask = 8192
	DOSecond     Mask = 16384
	DOThird      Mask = 24576
	DOGufMask    Mask = 24576
	DOSingular   Mask = 32768
	DODouble     Mask = 65536
	DOPlural     Mask = 98304
	DONumMask    Mask = 98304
	DOMask       Mask = 129024
)

const (
	DOsmichut Mask = 131072  // 结构态
	DSpecNoun Mask = 262144  // 专有名词
	DStartBit Mask = 524288  // hspell 保留位
	DAcronym  Mask = 1048576 // 缩略词
)

// Type 返回词性部分
func (m Mask) Type() Mask { return m & DTypeMask }

// Tense 返回时态部分
func (m Mask) Tense() Mask { return m & DTenseMask }

// IsVerb 是否为动词
func (m Mask) IsVerb() bool { return m.Type() == DVerb }

// HasSuffix 是否带代词后缀
func (m Mask) HasSuffix() bool { return m&DOMask != 0 }

// PrefixType 前缀类别掩码, 描述一个前缀可以与哪类词干组合
type PrefixType uint8

const (
	PSB      PrefixType = 1  // 仅 ב 开头的前缀 (用于 ב 不定式)
	PSL      PrefixType = 2  // 仅 ל 开头的前缀 (用于不定式)
	PSVerb   PrefixType = 4  // 可接动词
	PSNonDef PrefixType = 8  // 不含定冠词, 可接结构态、带后缀或专有名词
	PSImper  PrefixType = 16 // 可接命令式
	PSMisc   PrefixType = 32
	PSAll    PrefixType = 63
)

// MaskToPrefix 根据词条的语法掩码求出它所要求的前缀类别
func MaskToPrefix(m Mask) PrefixType {
	var specifier PrefixType
	switch m.Type() {
	case DVerb:
		switch {
		case m.Tense() == DImperative:
			specifier = PSImper
		case m.Tense() != DPresent:
			specifier = PSVerb
		case m&DOsmichut != 0 || m&DOMask != 0:
			specifier = PSNonDef
		default:
			specifier = PSAll
		}
		// 不定式覆盖上面的时态判断
		switch m.Tense() {
		case DInfinitive:
			specifier = PSL
		case DBInfinitive:
			specifier = PSB
		}
	case DNoun, DAdj:
		if m&DOsmichut != 0 || m&DOMask != 0 || m&DSpecNoun != 0 {
			specifier = PSNonDef
		} else {
			specifier = PSAll
		}
	default:
		specifier = PSAll
	}
	return specifier
}

// String 以英文描述掩码, 例如 "Noun,Masculine,Plural"
func (m Mask) String() string {
	return describe(m, englishNames)
}

// HebrewString 以希伯来文缩写描述掩码
func (m Mask) HebrewString() string {
	return describe(m, hebrewNames)
}

type maskNames struct {
	types     map[Mask]string
	masculine string
	feminine  string
	guf       map[Mask]string
	num       map[Mask]string
	tense     map[Mask]string
	proper    string
	construct string
	suffix    string
	acronym   string
}

var englishNames = maskNames{
	types:     map[Mask]string{DNoun: "Noun", DVerb: "Verb", DAdj: "Adj", 0: "x"},
	masculine: "Masculine",
	feminine:  "Feminine",
	guf:       map[Mask]string{DFirst: "1st", DSecond: "2nd", DThird: "3rd"},
	num:       map[Mask]string{DSingular: "Singular", DDouble: "Dual", DPlural: "Plural"},
	tense: map[Mask]string{
		DPast: "Past", DPresent: "Present", DFuture: "Future",
		DImperative: "Imperative", DInfinitive: "Infinitive", DBInfinitive: "B,Infinitive",
	},
	proper:    "Proper",
	construct: "Construct",
	suffix:    "Pronominal",
	acronym:   "Acronym",
}

var hebrewNames = maskNames{
	types:     map[Mask]string{DNoun: "ע", DVerb: "פ", DAdj: "ת", 0: "x"},
	masculine: "ז",
	feminine:  "נ",
	guf:       map[Mask]string{DFirst: "1", DSecond: "2", DThird: "3"},
	num:       map[Mask]string{DSingular: "יחיד", DDouble: "זוגי", DPlural: "רבים"},
	tense: map[Mask]string{
		DPast: "עבר", DPresent: "הווה", DFuture: "עתיד",
		DImperative: "ציווי", DInfinitive: "מקור", DBInfinitive: "מקור,ב",
	},
	proper:    "פרטי",
	construct: "סמיכות",
	suffix:    "כינוי",
	acronym:   "ראשי תיבות",
}

func describe(m Mask, names maskNames) string {
	parts := []string{names.types[m.Type()]}

	// 少数词条同时标注阴阳性
	if m&DMasculine != 0 {
		parts = append(parts, names.masculine)
	}
	if m&DFeminine != 0 {
		parts = append(parts, names.feminine)
	}
	if s, ok := names.guf[m&DGufMask]; ok {
		parts = append(parts, s)
	}
	if s, ok := names.num[m&DNumMask]; ok {
		parts = append(parts, s)
	}
	if s, ok := names.tense[m.Tense()]; ok {
		parts = append(parts, s)
	}
	if m&DSpecNoun != 0 {
		parts = append(parts, names.proper)
	}
	if m&DOsmichut != 0 {
		parts = append(parts, names.construct)
	}
	if m&DAcronym != 0 {
		parts = append(parts, names.acronym)
	}
	if m.HasSuffix() {
		suffix := []string{names.suffix}
		switch m & DOGenderMask {
		case DOMasculine:
			suffix = append(suffix, names.masculine)
		case DOFeminine:
			suffix = append(suffix, names.feminine)
		}
		switch m & DOGufMask {
		case DOFirst:
			suffix = append(suffix, names.guf[DFirst])
		case DOSecond:
			suffix = append(suffix, names.guf[DSecond])
		case DOThird:
			suffix = append(suffix, names.guf[DThird])
		}
		switch m & DONumMask {
		case DOSingular:
			suffix = append(suffix, names.num[DSingular])
		case DODouble:
			suffix = append(suffix, names.num[DDouble])
		case DOPlural:
			suffix = append(suffix, names.num[DPlural])
		}
		parts = append(parts, strings.Join(suffix, "/"))
	}
	return strings.Join(parts, ",")
}
