package discovery

import (
	"fmt"
	"strconv"
	"strings"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// EncodeGatewayTXT creates TXT records for gateway discovery.
func EncodeGatewayTXT(info *GatewayInfo) TXTRecordMap {
	txt := make(TXTRecordMap)

	// Required fields
	txt[TXTKeyGatewayID] = info.GatewayID
	txt[TXTKeyVersion] = strconv.Itoa(ProtocolVersion)
	txt[TXTKeyPath] = info.Path

	// Optional fields
	if info.Name != "" {
		txt[TXTKeyName] = info.Name
	}
	if info.Hosts > 0 {
		txt[TXTKeyHosts] = strconv.Itoa(info.Hosts)
	}

	return txt
}

// DecodeGatewayTXT parses TXT records from gateway discovery.
func DecodeGatewayTXT(txt TXTRecordMap) (*GatewayService, error) {
	svc := &GatewayService{}

	// Parse gateway id (required)
	var ok bool
	svc.GatewayID, ok = txt[TXTKeyGatewayID]
	if !ok || svc.GatewayID == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyGatewayID)
	}

	// Parse protocol version (required)
	verStr, ok := txt[TXTKeyVersion]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyVersion)
	}
	ver, err := strconv.ParseUint(verStr, 10, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid version %q", ErrInvalidTXTRecord, verStr)
	}
	svc.Version = int(ver)

	// Parse path (required)
	svc.Path, ok = txt[TXTKeyPath]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyPath)
	}

	// Optional fields
	svc.Name = txt[TXTKeyName]

	if hStr, ok := txt[TXTKeyHosts]; ok {
		h, err := strconv.ParseUint(hStr, 10, 16)
		if err == nil {
			svc.Hosts = int(h)
		}
	}

	return svc, nil
}

// TXTRecordsToStrings converts a TXTRecordMap to a slice of "key=value" strings.
// This format is commonly used by mDNS libraries.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}

// StringsToTXTRecords parses a slice of "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) == 2 {
			txt[parts[0]] = parts[1]
		} else if len(parts) == 1 && parts[0] != "" {
			// Key without value (boolean flag)
			txt[parts[0]] = ""
		}
	}
	return txt
}

// InstanceName builds the mDNS instance name for a gateway id.
func InstanceName(gatewayID string) string {
	name := "CraftLink-" + gatewayID
	if len(name) > MaxInstanceNameLen {
		name = name[:MaxInstanceNameLen]
	}
	return name
}

// ValidateInstanceName checks if an instance name is valid for mDNS.
func ValidateInstanceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInstanceNameInvalid)
	}
	if len(name) > MaxInstanceNameLen {
		return fmt.Errorf("%w: exceeds %d characters", ErrInstanceNameInvalid, MaxInstanceNameLen)
	}
	return nil
}
