package token

// Kind tags the token family described in spec section 3. Rather than a
// class hierarchy (which the source's dynamic object model used), the
// variant is modeled as a single struct with a Kind tag and flag-style
// predicate methods, and the few behaviors that differ per variant (does it
// have Inner/End, how the feature pipeline finalizes it) are dispatched by
// small functions keyed on the tag, per the "polymorphic token family"
// design note.
type Kind uint8

const (
	// KindPlain is non-node content; only ever appears inside a node's Inner.
	KindPlain Kind = iota
	// KindNodeStart opens a node.
	KindNodeStart
	// KindNodeEnd closes a node; never appears in Inner.
	KindNodeEnd
	// KindOpenEnd is the sentinel for a node whose end has not been observed.
	KindOpenEnd
	// KindMask is consumed by the masking sub-protocol; never reaches the tree.
	KindMask
	// KindMaskNode is the node-shaped counterpart of KindMask.
	KindMaskNode
	// KindInstant bypasses priority arbitration.
	KindInstant
	// KindInstantEnd is the end-side counterpart of KindInstant.
	KindInstantEnd
	// KindInstantNode is the node-start-side counterpart of KindInstant.
	KindInstantNode
	// KindRootNode is the root phrase's distinguished node-start.
	KindRootNode
	// KindEOF is the root-specific end sentinel assigned at end of input.
	KindEOF
	// KindOpenEOF is an unclosed node's end sentinel, assigned at end of input.
	KindOpenEOF
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "Plain"
	case KindNodeStart:
		return "NodeStart"
	case KindNodeEnd:
		return "NodeEnd"
	case KindOpenEnd:
		return "OpenEnd"
	case KindMask:
		return "Mask"
	case KindMaskNode:
		return "MaskNode"
	case KindInstant:
		return "Instant"
	case KindInstantEnd:
		return "InstantEnd"
	case KindInstantNode:
		return "InstantNode"
	case KindRootNode:
		return "RootNode"
	case KindEOF:
		return "EOF"
	case KindOpenEOF:
		return "OpenEOF"
	default:
		return "Unknown"
	}
}

// IsNodeStart reports whether a token of this kind opens a node.
func (k Kind) IsNodeStart() bool {
	switch k {
	case KindNodeStart, KindInstantNode, KindRootNode:
		return true
	default:
		return false
	}
}

// IsEnd reports whether a token of this kind closes a node.
func (k Kind) IsEnd() bool {
	switch k {
	case KindNodeEnd, KindOpenEnd, KindInstantEnd, KindEOF, KindOpenEOF:
		return true
	default:
		return false
	}
}

// IsMask reports whether a token of this kind belongs to the masking
// sub-protocol and must never survive into the committed tree.
func (k Kind) IsMask() bool {
	return k == KindMask || k == KindMaskNode
}

// IsInstant reports whether a token of this kind pre-empts priority
// arbitration (spec section 4.2, rule 1).
func (k Kind) IsInstant() bool {
	switch k {
	case KindInstant, KindInstantEnd, KindInstantNode:
		return true
	default:
		return false
	}
}

// IsOpen reports whether a token of this kind is a not-yet-closed sentinel.
func (k Kind) IsOpen() bool {
	return k == KindOpenEnd || k == KindOpenEOF
}

// HasInner reports whether a token of this kind owns an Inner/End pair, i.e.
// whether it is node-shaped.
func (k Kind) HasInner() bool {
	return k.IsNodeStart()
}

// FeatureKind tags the five feature-pipeline operators (spec section 4.5).
type FeatureKind uint8

const (
	FeatureLStrip FeatureKind = iota
	FeatureRTokenize
	FeatureSwitchTo
	FeatureSwitchPh
	FeatureForwardTo
)

func (k FeatureKind) String() string {
	switch k {
	case FeatureLStrip:
		return "LStrip"
	case FeatureRTokenize:
		return "RTokenize"
	case FeatureSwitchTo:
		return "SwitchTo"
	case FeatureSwitchPh:
		return "SwitchPh"
	case FeatureForwardTo:
		return "ForwardTo"
	default:
		return "Unknown"
	}
}

// Feature is a single pipeline operator attached to a candidate token. Width
// carries the n for LStrip/RTokenize; Phrase carries the target phrase for
// SwitchTo/SwitchPh/ForwardTo. It is data only; the fixed-order execution
// algorithm lives in the feature package, which is the sole reason this type
// is exported from token rather than unexported: token.Phrase and
// token.Token must not import the feature package (it imports them), so the
// operator data shape lives here while the package that knows how to run it
// is named feature, matching the "Feature operators" component in the
// module layout.
type Feature struct {
	Kind   FeatureKind
	Width  int
	Phrase Phrase
}

// Pipeline is an ordered list of Feature operators, composable by append
// (the pipe operator in the source prototype is just list-append).
type Pipeline []Feature

// Append returns a new pipeline with op appended.
func (p Pipeline) Append(op Feature) Pipeline {
	return append(append(Pipeline{}, p...), op)
}
