// Package oracle answers the single question the rest of this module
// exists to serve: can a given candidate edge be added to the current
// graph without destroying planarity?
//
// BlockLinkable answers it for two vertices known to lie in the same
// biconnected block. Two block-local vertices do not generally share a
// single SPQR node: a separation pair routinely sends them into
// disjoint branches of the tree, with only the pair itself in common.
// BlockLinkable therefore walks up from each vertex's shallowest
// containing node (its "allocation node") toward their nearest common
// ancestor, correcting each side's boundary to the highest node still
// genuinely reachable from it, then propagates a 2-bit face mask
// across any remaining R-nodes on the way to the corrected pair's own
// nearest common ancestor. S- and P-nodes never narrow the mask (a
// cycle or a bond always has room for one more chord or parallel
// edge); only an R-node's face structure can. The two sides are
// finally combined at that ancestor: by shared faces if both carried
// an incoming tree edge, by face membership if only one did, or by a
// direct shared-face check if both sides start at the ancestor itself. Each
// Block caches this per (a, b) pair for as long as the block itself
// lives -- one recalculate pass -- never across edits.
//
// CanAddAlongBC extends this across block boundaries: it walks the
// block-cut tree from each endpoint up to their nearest common
// ancestor, calling BlockLinkable once per block straddled along the
// way between the cut vertex it shares with the block above it and
// either the query endpoint itself (at the start of a branch) or the
// cut vertex shared with the block below it, since in a planar
// embedding each cut vertex's incident blocks nest inside one
// another's faces. If the nearest common ancestor is itself a block
// rather than a cut vertex, one final BlockLinkable call there
// combines both branches' carried-in attachments.
package oracle
