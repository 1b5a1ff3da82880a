package core

// RecordSet is either Empty or one *Collection of a single record kind:
//
//	Empty{}
//	*Collection[Fermentable], *Collection[Hop], *Collection[Yeast],
//	*Collection[Misc], *Collection[Water], *Collection[Recipe],
//	*Collection[Style], *Collection[Mash], *Collection[Equipment]
//
// The set is closed; writers switch over exactly these types.
type RecordSet interface {
	Len() int
	recordSet()
}

// Empty is the RecordSet without data.
type Empty struct{}

func (Empty) Len() int   { return 0 }
func (Empty) recordSet() {}

// KindOf reports the kind held by set; ok is false for Empty.
func KindOf(set RecordSet) (k Kind, ok bool) {
	if set == nil {
		return 0, false
	}
	if c, isColl := set.(interface{ Kind() Kind }); isColl {
		return c.Kind(), true
	}
	return 0, false
}

var (
	_ RecordSet = Empty{}
	_ RecordSet = (*Collection[Fermentable])(nil)
	_ RecordSet = (*Collection[Hop])(nil)
	_ RecordSet = (*Collection[Yeast])(nil)
	_ RecordSet = (*Collection[Misc])(nil)
	_ RecordSet = (*Collection[Water])(nil)
	_ RecordSet = (*Collection[Recipe])(nil)
	_ RecordSet = (*Collection[Style])(nil)
	_ RecordSet = (*Collection[Mash])(nil)
	_ RecordSet = (*Collection[Equipment])(nil)
)
