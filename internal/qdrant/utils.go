package qdrant

import (
	qdrant "github.com/qdrant/go-client/qdrant"
)

// extractVectorDetails safely extracts the vector size and distance metric
// from a Qdrant CollectionInfo, navigating the nested protobuf "oneof"
// wrappers and guarding against nils. Missing or unexpected fields yield
// (0, "").
func extractVectorDetails(info *qdrant.CollectionInfo) (int, string) {
	if info == nil ||
		info.Config == nil ||
		info.Config.Params == nil ||
		info.Config.Params.VectorsConfig == nil ||
		info.Config.Params.VectorsConfig.Config == nil {
		return 0, ""
	}

	if cfg, ok := info.Config.Params.VectorsConfig.Config.(*qdrant.VectorsConfig_Params); ok {
		return int(cfg.Params.Size), cfg.Params.Distance.String()
	}

	return 0, ""
}

// derefUint64 safely dereferences a *uint64, returning 0 for nil.
func derefUint64(v *uint64) uint64 {
	if v != nil {
		return *v
	}
	return 0
}
