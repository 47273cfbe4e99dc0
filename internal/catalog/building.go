package catalog

import "strings"

// namedRooms maps rooms with no usable prefix to their building.
var namedRooms = map[string]string{
	"ABS CBN CORPORATION INNOVATION CLASSROOM": "Arete",
	"ART GAL":                            "Arete",
	"BLACK BOX THEATER FA":               "Arete",
	"BRAZIER KITCHEN":                    "Arete",
	"CO BUN TING AND PO TY LEE CO MAC LAB": "Arete",
	"COLLEGE '66 CO-LAB":                 "Arete",
	"FA DEPT":                            "Arete",
	"INNOVATION 201":                     "Arete",
	"INNOVATION 202":                     "Arete",
	"JOSEPH AND GEMMA TANBUNTIONG STUDIO": "Arete",
	"NATIONAL BOOKSTORE ATELIER":         "Arete",
	"YAO SIU LUN MAC LAB":                "Arete",
	"COV COURTS":                         "PE Complex",
	"DANCE AREA":                         "PE Complex",
	"LS POOL":                            "PE Complex",
	"MARTIAL ARTS CE":                    "PE Complex",
	"MARTIAL ARTS RM":                    "PE Complex",
	"MULTI-PUR RM":                       "PE Complex",
	"TAB TEN AREA":                       "PE Complex",
	"TENNIS CRT":                         "PE Complex",
	"WEIGHTS GYM":                        "PE Complex",
	"DS DEPT":                            "LH",
	"EC DEPT":                            "LH",
	"EU DEPT":                            "LH",
	"JSP OFFICE":                         "LH",
	"POS DEPT":                           "LH",
	"COM STUD":                           "SS",
	"CORD TRNG RM":                       "SS",
	"GROUP THERAPY RM":                   "SS",
	"PSY COMP RM":                        "SS",
	"EN DEPT":                            "DLC",
	"FIL DEPT":                           "DLC",
	"IS DEPT":                            "DLC",
	"PH DEPT":                            "DLC",
	"PS DEPT":                            "F",
	"CH DEPT":                            "C",
	"HSC DEPT":                           "CTC",
	"L&S DEPT":                           "SOM",
	"QMIT OFFICE":                        "SOM",
}

// dashPrefixes resolve "Bldg-Room" forms such as "B-201" or "SEC-A105".
var dashPrefixes = []string{"B", "BEL", "C", "F", "G", "K", "SEC-A", "SEC-B", "SEC-C"}

// barePrefixes resolve "Bldg Room" forms such as "CTC 102" (BEL 211 is
// anomalous but matches here too).
var barePrefixes = []string{"BEL", "CTC", "LH", "SOM", "SS"}

// Building resolves a room name to the building housing it. Unknown
// rooms resolve to themselves, same as the source data.
func Building(room string) string {
	if b, ok := namedRooms[room]; ok {
		return b
	}
	for _, p := range dashPrefixes {
		if strings.HasPrefix(room, p+"-") && len(room) > len(p)+1 {
			return p
		}
		// SEC wings carry the room glued on: SEC-A105.
		if strings.Contains(p, "-") && strings.HasPrefix(room, p) && len(room) > len(p) {
			return p
		}
	}
	for _, p := range barePrefixes {
		if strings.HasPrefix(room, p) && len(room) > len(p) {
			return p
		}
	}
	return room
}
