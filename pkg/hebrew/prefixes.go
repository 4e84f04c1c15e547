package hebrew

// PrefixEntry 前缀表中的一项
type PrefixEntry struct {
	Prefix string
	Mask   PrefixType
}

const (
	psPrep  = PSNonDef | PSMisc          // 介词 כ מ
	psPrepB = PSB | PSNonDef | PSMisc    // ב 及以 ב 结尾的组合
	psPrepL = PSL | PSNonDef | PSMisc    // ל 及以 ל 结尾的组合
	psRel   = PSVerb | PSNonDef | PSMisc // 关系词 ש, כש, מש 等
	psDef   = PSMisc                     // 以定冠词 ה 结尾的组合
	psConj  = PSVerb | PSNonDef | PSImper | PSMisc
)

// 不包含疑问词 ה 的前缀表
var prefixesNoH = []PrefixEntry{
	{"ב", psPrepB},
	{"ה", psDef},
	{"ו", psConj},
	{"כ", psPrep},
	{"ל", psPrepL},
	{"מ", psPrep},
	{"ש", psRel},

	{"וב", psPrepB},
	{"וה", psDef},
	{"וכ", psPrep},
	{"ול", psPrepL},
	{"ומ", psPrep},
	{"וש", psRel},

	{"כש", psRel},
	{"מש", psRel},
	{"לכש", psRel},
	{"וכש", psRel},
	{"ומש", psRel},
	{"ולכש", psRel},

	{"מה", psDef},
	{"שה", psDef},
	{"כשה", psDef},
	{"ומה", psDef},
	{"ושה", psDef},
	{"וכשה", psDef},

	{"שב", psPrepB},
	{"שכ", psPrep},
	{"של", psPrepL},
	{"שמ", psPrep},
	{"ושב", psPrepB},
	{"ושכ", psPrep},
	{"ושל", psPrepL},
	{"ושמ", psPrep},

	{"כשב", psPrepB},
	{"כשכ", psPrep},
	{"כשל", psPrepL},
	{"כשמ", psPrep},
	{"וכשב", psPrepB},
	{"וכשל", psPrepL},
	{"וכשמ", psPrep},

	{"משב", psPrepB},
	{"משל", psPrepL},
	{"ומשל", psPrepL},
}

// Prefixes 返回静态前缀表; allowHeHasheela 为 true 时疑问词 ה 也可以接动词
func Prefixes(allowHeHasheela bool) []PrefixEntry {
	table := make([]PrefixEntry, len(prefixesNoH))
	copy(table, prefixesNoH)
	if !allowHeHasheela {
		return table
	}
	for i, e := range table {
		switch e.Prefix {
		case "ה", "וה":
			table[i].Mask = PSVerb | PSNonDef | PSMisc
		}
	}
	return table
}
