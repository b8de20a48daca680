package calc

// VisitorFunc is called for each node in a tree. Calling next descends into the node's children.
type VisitorFunc func(n Node, next func() error) error

// Visit all nodes of the tree rooted at n, depth first.
//
// Visiting stops at the first error returned by visitor.
func Visit(n Node, visitor VisitorFunc) error {
	return visitor(n, func() error {
		for _, child := range n.children() {
			if err := Visit(child, visitor); err != nil {
				return err
			}
		}
		return nil
	})
}
