package protocol

import "fmt"

// ResourcePackInfo describes a pack offered to the client. Opaque is carried
// verbatim; its meaning is not defined for this protocol version.
type ResourcePackInfo struct {
	PackageID string
	Version   string
	Opaque    int64
}

func ReadResourcePackInfo(b *Buffer) (ResourcePackInfo, error) {
	id, err := ReadString(b)
	if err != nil {
		return ResourcePackInfo{}, fmt.Errorf("read resource pack id: %w", err)
	}
	version, err := ReadString(b)
	if err != nil {
		return ResourcePackInfo{}, fmt.Errorf("read resource pack version: %w", err)
	}
	opaque, err := ReadInt64(b)
	if err != nil {
		return ResourcePackInfo{}, fmt.Errorf("read resource pack opaque field: %w", err)
	}
	return ResourcePackInfo{PackageID: id, Version: version, Opaque: opaque}, nil
}

func WriteResourcePackInfo(b *Buffer, info ResourcePackInfo) {
	WriteString(b, info.PackageID)
	WriteString(b, info.Version)
	WriteInt64(b, info.Opaque)
}
