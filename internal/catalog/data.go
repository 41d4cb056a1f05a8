package catalog

// Section properties follow AISC manual values for A36 shapes; capacity
// tables give the allowable equivalent concentrated load (lb) at each
// tabulated span (ft) for a simply supported runway.

var uncappedSections = []BeamSection{
	{Designation: "W8x24", Depth: 7.93, Weight: 24, Area: 7.08, WebThickness: 0.245, FlangeWidth: 6.495, FlangeThickness: 0.4, FlangeArea: 2.598, MomentOfInertia: 82.7, SectionModulus: 20.9, RadiusOfGyration: 3.42, Gage: 4},
	{Designation: "W10x22", Depth: 10.17, Weight: 22, Area: 6.49, WebThickness: 0.24, FlangeWidth: 5.75, FlangeThickness: 0.36, FlangeArea: 2.07, MomentOfInertia: 118, SectionModulus: 23.2, RadiusOfGyration: 4.27, Gage: 2.75},
	{Designation: "W10x26", Depth: 10.33, Weight: 26, Area: 7.61, WebThickness: 0.26, FlangeWidth: 5.77, FlangeThickness: 0.44, FlangeArea: 2.539, MomentOfInertia: 144, SectionModulus: 27.9, RadiusOfGyration: 4.35, Gage: 2.75},
	{Designation: "W12x26", Depth: 12.22, Weight: 26, Area: 7.65, WebThickness: 0.23, FlangeWidth: 6.49, FlangeThickness: 0.38, FlangeArea: 2.466, MomentOfInertia: 204, SectionModulus: 33.4, RadiusOfGyration: 5.17, Gage: 3.5},
	{Designation: "W12x30", Depth: 12.34, Weight: 30, Area: 8.79, WebThickness: 0.26, FlangeWidth: 6.52, FlangeThickness: 0.44, FlangeArea: 2.869, MomentOfInertia: 238, SectionModulus: 38.6, RadiusOfGyration: 5.21, Gage: 3.5},
	{Designation: "W14x30", Depth: 13.84, Weight: 30, Area: 8.85, WebThickness: 0.27, FlangeWidth: 6.73, FlangeThickness: 0.385, FlangeArea: 2.591, MomentOfInertia: 291, SectionModulus: 42, RadiusOfGyration: 5.73, Gage: 3.5},
	{Designation: "W16x36", Depth: 15.86, Weight: 36, Area: 10.6, WebThickness: 0.295, FlangeWidth: 6.985, FlangeThickness: 0.43, FlangeArea: 3.004, MomentOfInertia: 448, SectionModulus: 56.5, RadiusOfGyration: 6.51, Gage: 3.5},
	{Designation: "W18x40", Depth: 17.9, Weight: 40, Area: 11.8, WebThickness: 0.315, FlangeWidth: 6.015, FlangeThickness: 0.525, FlangeArea: 3.158, MomentOfInertia: 612, SectionModulus: 68.4, RadiusOfGyration: 7.21, Gage: 3.5},
	{Designation: "W21x50", Depth: 20.83, Weight: 50, Area: 14.7, WebThickness: 0.38, FlangeWidth: 6.53, FlangeThickness: 0.535, FlangeArea: 3.494, MomentOfInertia: 984, SectionModulus: 94.5, RadiusOfGyration: 8.18, Gage: 3.5},
	{Designation: "W24x62", Depth: 23.74, Weight: 62, Area: 18.2, WebThickness: 0.43, FlangeWidth: 7.04, FlangeThickness: 0.59, FlangeArea: 4.154, MomentOfInertia: 1550, SectionModulus: 131, RadiusOfGyration: 9.23, Gage: 3.5},
}

var cappedSections = []BeamSection{
	{Designation: "W10x22+C8x11.5", Depth: 10.39, Weight: 33.5, Area: 9.87, WebThickness: 0.24, FlangeWidth: 5.75, FlangeThickness: 0.36, FlangeArea: 2.07, MomentOfInertia: 169.128, SectionModulus: 25.22, RadiusOfGyration: 4.14, Gage: 2.75, Capped: true, Channel: "C8x11.5", CombinedWidth: 8, TopCentroid: 3.684, BottomCentroid: 6.706, TopModulus: 45.911, BottomModulus: 25.22, TorsionConstant: 0.369},
	{Designation: "W12x26+C10x15.3", Depth: 12.46, Weight: 41.3, Area: 12.14, WebThickness: 0.23, FlangeWidth: 6.49, FlangeThickness: 0.38, FlangeArea: 2.466, MomentOfInertia: 298.723, SectionModulus: 36.323, RadiusOfGyration: 4.96, Gage: 3.5, Capped: true, Channel: "C10x15.3", CombinedWidth: 10, TopCentroid: 4.236, BottomCentroid: 8.224, TopModulus: 70.521, BottomModulus: 36.323, TorsionConstant: 0.51},
	{Designation: "W12x30+C10x15.3", Depth: 12.58, Weight: 45.3, Area: 13.28, WebThickness: 0.26, FlangeWidth: 6.52, FlangeThickness: 0.44, FlangeArea: 2.869, MomentOfInertia: 339.43, SectionModulus: 41.787, RadiusOfGyration: 5.056, Gage: 3.5, Capped: true, Channel: "C10x15.3", CombinedWidth: 10, TopCentroid: 4.457, BottomCentroid: 8.123, TopModulus: 76.154, BottomModulus: 41.787, TorsionConstant: 0.667},
	{Designation: "W14x30+C10x15.3", Depth: 14.08, Weight: 45.3, Area: 13.34, WebThickness: 0.27, FlangeWidth: 6.73, FlangeThickness: 0.385, FlangeArea: 2.591, MomentOfInertia: 420.141, SectionModulus: 46.086, RadiusOfGyration: 5.612, Gage: 3.5, Capped: true, Channel: "C10x15.3", CombinedWidth: 10, TopCentroid: 4.963, BottomCentroid: 9.117, TopModulus: 84.647, BottomModulus: 46.086, TorsionConstant: 0.59},
	{Designation: "W16x36+C12x20.7", Depth: 16.142, Weight: 56.7, Area: 16.69, WebThickness: 0.295, FlangeWidth: 6.985, FlangeThickness: 0.43, FlangeArea: 3.004, MomentOfInertia: 670.258, SectionModulus: 62.807, RadiusOfGyration: 6.337, Gage: 3.5, Capped: true, Channel: "C12x20.7", CombinedWidth: 12, TopCentroid: 5.47, BottomCentroid: 10.672, TopModulus: 122.528, BottomModulus: 62.807, TorsionConstant: 0.915},
	{Designation: "W18x40+C12x20.7", Depth: 18.182, Weight: 60.7, Area: 17.89, WebThickness: 0.315, FlangeWidth: 6.015, FlangeThickness: 0.525, FlangeArea: 3.158, MomentOfInertia: 908.426, SectionModulus: 76.628, RadiusOfGyration: 7.126, Gage: 3.5, Capped: true, Channel: "C12x20.7", CombinedWidth: 12, TopCentroid: 6.327, BottomCentroid: 11.855, TopModulus: 143.581, BottomModulus: 76.628, TorsionConstant: 1.18},
	{Designation: "W21x50+C12x20.7", Depth: 21.112, Weight: 70.7, Area: 20.79, WebThickness: 0.38, FlangeWidth: 6.53, FlangeThickness: 0.535, FlangeArea: 3.494, MomentOfInertia: 1418.4, SectionModulus: 106.295, RadiusOfGyration: 8.26, Gage: 3.5, Capped: true, Channel: "C12x20.7", CombinedWidth: 12, TopCentroid: 7.768, BottomCentroid: 13.344, TopModulus: 182.595, BottomModulus: 106.295, TorsionConstant: 1.51},
	{Designation: "W21x62+C15x33.9", Depth: 21.83, Weight: 95.9, Area: 28.26, WebThickness: 0.4, FlangeWidth: 8.24, FlangeThickness: 0.615, FlangeArea: 5.068, MomentOfInertia: 2026.102, SectionModulus: 141.142, RadiusOfGyration: 8.467, Gage: 5.5, Capped: true, Channel: "C15x33.9", CombinedWidth: 15, TopCentroid: 7.475, BottomCentroid: 14.355, TopModulus: 271.051, BottomModulus: 141.142, TorsionConstant: 2.84},
	{Designation: "W24x68+C15x33.9", Depth: 24.13, Weight: 101.9, Area: 30.06, WebThickness: 0.415, FlangeWidth: 8.965, FlangeThickness: 0.585, FlangeArea: 5.245, MomentOfInertia: 2715.532, SectionModulus: 173.316, RadiusOfGyration: 9.505, Gage: 5.5, Capped: true, Channel: "C15x33.9", CombinedWidth: 15, TopCentroid: 8.462, BottomCentroid: 15.668, TopModulus: 320.912, BottomModulus: 173.316, TorsionConstant: 2.88},
	{Designation: "W27x84+C15x33.9", Depth: 27.11, Weight: 117.9, Area: 34.76, WebThickness: 0.46, FlangeWidth: 9.96, FlangeThickness: 0.64, FlangeArea: 6.374, MomentOfInertia: 4053.156, SectionModulus: 237.432, RadiusOfGyration: 10.798, Gage: 5.5, Capped: true, Channel: "C15x33.9", CombinedWidth: 15, TopCentroid: 10.039, BottomCentroid: 17.071, TopModulus: 403.733, BottomModulus: 237.432, TorsionConstant: 3.82},
}

var uncappedCapacity = map[string]map[int]int{
	"W8x24":  {8: 20900, 10: 16720, 12: 13930, 14: 11940, 16: 10450, 18: 9290, 20: 8360},
	"W10x22": {8: 23200, 10: 18560, 12: 15470, 14: 13260, 16: 11600, 18: 10310, 20: 9280, 22: 8440, 24: 7730},
	"W10x26": {10: 22320, 12: 18600, 14: 15940, 16: 13950, 18: 12400, 20: 11160, 22: 10150, 24: 9300},
	"W12x26": {10: 26720, 12: 22270, 14: 19090, 16: 16700, 18: 14840, 20: 13360, 22: 12150, 24: 11130, 26: 10280, 28: 9540},
	"W12x30": {10: 30880, 12: 25730, 14: 22060, 16: 19300, 18: 17160, 20: 15440, 22: 14040, 24: 12870, 26: 11880, 28: 11030},
	"W14x30": {12: 28000, 14: 24000, 16: 21000, 18: 18670, 20: 16800, 22: 15270, 24: 14000, 26: 12920, 28: 12000, 30: 11200, 32: 10500},
	"W16x36": {12: 37670, 14: 32290, 16: 28250, 18: 25110, 20: 22600, 22: 20550, 24: 18830, 26: 17380, 28: 16140, 30: 15070, 32: 14120, 34: 13290, 36: 12560},
	"W18x40": {16: 34200, 18: 30400, 20: 27360, 22: 24870, 24: 22800, 26: 21050, 28: 19540, 30: 18240, 32: 17100, 34: 16090, 36: 15200, 38: 14400, 40: 13680},
	"W21x50": {16: 47250, 18: 42000, 20: 37800, 22: 34360, 24: 31500, 26: 29080, 28: 27000, 30: 25200, 32: 23620, 34: 22240, 36: 21000, 38: 19890, 40: 18900, 42: 18000, 44: 17180},
	"W24x62": {20: 52400, 22: 47640, 24: 43670, 26: 40310, 28: 37430, 30: 34930, 32: 32750, 34: 30820, 36: 29110, 38: 27580, 40: 26200, 42: 24950, 44: 23820, 46: 22780, 48: 21830},
}

var cappedCapacity = map[string]map[int]int{
	"W10x22+C8x11.5":  {12: 16810, 16: 12610, 20: 10090, 24: 8410, 28: 7210},
	"W12x26+C10x15.3": {12: 24220, 16: 18160, 20: 14530, 24: 12110, 28: 10380, 32: 9080},
	"W12x30+C10x15.3": {14: 23880, 18: 18570, 22: 15200, 26: 12860, 30: 11140},
	"W14x30+C10x15.3": {14: 26330, 18: 20480, 22: 16760, 26: 14180, 30: 12290, 34: 10840},
	"W16x36+C12x20.7": {16: 31400, 20: 25120, 24: 20940, 28: 17940, 32: 15700, 36: 13960, 40: 12560, 44: 11420},
	"W18x40+C12x20.7": {16: 38310, 20: 30650, 24: 25540, 28: 21890, 32: 19160, 36: 17030, 40: 15330, 44: 13930, 48: 12770},
	"W21x50+C12x20.7": {20: 42520, 24: 35430, 28: 30370, 32: 26570, 36: 23620, 40: 21260, 44: 19330, 48: 17720, 52: 16350},
	"W21x62+C15x33.9": {20: 56460, 24: 47050, 28: 40330, 32: 35290, 36: 31360, 40: 28230, 44: 25660, 48: 23520, 52: 21710, 56: 20160},
	"W24x68+C15x33.9": {24: 57770, 28: 49520, 32: 43330, 36: 38510, 40: 34660, 44: 31510, 48: 28890, 52: 26660, 56: 24760, 60: 23110},
	"W27x84+C15x33.9": {24: 79140, 28: 67840, 32: 59360, 36: 52760, 40: 47490, 44: 43170, 48: 39570, 52: 36530, 56: 33920, 60: 31660},
}
