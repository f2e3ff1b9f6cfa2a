package a

type Fee struct {
	Type interface{ isFee() }
}

type FeeFixed struct{ Amount int64 }
type FeeFractional struct{ Num, Den int64 }
type FeeRoyalty struct{ Num, Den int64 }

func (FeeFixed) isFee()      {}
func (FeeFractional) isFee() {}
func (*FeeRoyalty) isFee()   {}

type Stringer interface{ String() string }

func complete(f Fee) int {
	switch f.Type.(type) {
	case FeeFixed:
		return 1
	case FeeFractional:
		return 2
	case *FeeRoyalty:
		return 3
	}
	return 0
}

func defaulted(f Fee) int {
	switch f.Type.(type) {
	case FeeFixed:
		return 1
	default:
		return 0
	}
}

func incomplete(f Fee) int {
	switch t := f.Type.(type) { // want `type switch on f.Type is missing \*FeeRoyalty, FeeFractional; add the cases or a default`
	case FeeFixed:
		return int(t.Amount)
	}
	return 0
}

func unsealed(s Stringer) int {
	switch s.(type) {
	case nil:
		return 0
	}
	return 1
}
