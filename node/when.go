package node

// WhenNode is a ConditionNode used as a branch of a Choose: only the
// first When whose Test is truthy emits (§3's When row; enforced by
// ChooseNode, not by WhenNode itself).
type WhenNode = ConditionNode
