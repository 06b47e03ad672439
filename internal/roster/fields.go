package roster

// Column headers the calculators address directly. The full required-field
// lists below are the export contract: every record must carry every listed
// header with a non-empty value before scoring may proceed.

// RequiredPitcherFields is the pitcher export contract.
var RequiredPitcherFields = []string{
	"ID", "ORG", "POS", "Name", "Age", "B", "T", "OVR", "POT", "Prone",
	"STU", "MOV", "CON", "STU P", "MOV P", "CON P", "FB", "FBP", "CH", "CHP",
	"CB", "CBP", "SL", "SLP", "SI", "SIP", "SP", "SPP", "CT", "CTP", "FO", "FOP",
	"CC", "CCP", "SC", "SCP", "KC", "KCP", "KN", "KNP", "PIT", "VELO", "STM",
	"G/F", "HLD", "SctAcc",
}

// RequiredBatterFields is the batter export contract.
var RequiredBatterFields = []string{
	"ID", "POS", "Name", "ORG", "Age", "B", "Prone", "OVR", "POT", "CON", "GAP", "POW", "EYE", "K's",
	"CON P", "GAP P", "POW P", "EYE P", "K P", "C ABI", "C FRM", "C ARM", "IF RNG", "IF ERR",
	"IF ARM", "TDP", "OF RNG", "OF ERR", "OF ARM", "SPE", "STE", "RUN", "SctAcc",
}
