package models

import "encoding/json"

// Employee has no fixed shape yet; entries are kept verbatim so the
// document round-trips whatever was stored in the slot.
type Employee = json.RawMessage
