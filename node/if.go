package node

// IfNode is a plain conditional: emits its children iff Test is truthy
// (§3's If row). Kept as a distinct name from WhenNode, matching the
// teacher's one-file-per-IR-kind layout, even though both are aliases
// of ConditionNode.
type IfNode = ConditionNode
