package services

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/projectteamlcet-droid/civic-eye/models"
	"github.com/projectteamlcet-droid/civic-eye/utils"
)

// DamageArchetype 描述一类可被检测出的损伤及其候选说明文案
type DamageArchetype struct {
	Type         string
	Explanations []string
}

// damageTypes 按资产类别维护的损伤档案表，未知类别回退到road表
var damageTypes = map[models.AssetType][]DamageArchetype{
	models.AssetTypeRoad: {
		{Type: "Pothole", Explanations: []string{
			"Large pothole with exposed aggregate. Immediate repair needed.",
			"Moderate pothole forming at road junction. Traffic hazard.",
		}},
		{Type: "Longitudinal Crack", Explanations: []string{
			"Deep crack along road surface indicating subgrade failure.",
			"Surface crack propagating due to thermal expansion.",
		}},
		{Type: "Surface Erosion", Explanations: []string{
			"Water runoff causing surface degradation.",
			"Bitumen stripping observed on surface layer.",
		}},
		{Type: "Rutting", Explanations: []string{
			"Permanent deformation in wheel paths.",
			"Heavy vehicle load causing structural deformation.",
		}},
	},
	models.AssetTypeWater: {
		{Type: "Pipe Corrosion", Explanations: []string{
			"Significant corrosion on pipe exterior. Leak risk elevated.",
			"Internal corrosion reducing water flow capacity.",
		}},
		{Type: "Contamination Detected", Explanations: []string{
			"Chemical contamination above safe threshold.",
			"Biological agents detected in water sample.",
		}},
		{Type: "Pressure Anomaly", Explanations: []string{
			"Unusual pressure drop indicating possible leak.",
			"Pressure spike detected - valve malfunction suspected.",
		}},
		{Type: "Sediment Buildup", Explanations: []string{
			"Sediment accumulation reducing pipe diameter.",
			"Mineral deposits causing flow restriction.",
		}},
	},
	models.AssetTypeBuilding: {
		{Type: "Structural Crack", Explanations: []string{
			"Load-bearing wall showing stress fractures.",
			"Foundation settling causing wall separation.",
		}},
		{Type: "Water Damage", Explanations: []string{
			"Moisture infiltration causing material degradation.",
			"Roof leak causing ceiling and wall damage.",
		}},
		{Type: "Electrical Hazard", Explanations: []string{
			"Exposed wiring detected in public area.",
			"Overloaded circuit panel requiring upgrade.",
		}},
		{Type: "Foundation Issue", Explanations: []string{
			"Uneven settlement observed. Structural assessment needed.",
			"Soil erosion undermining foundation stability.",
		}},
	},
}

// AnalysisResult 表示一次模拟检测的输出
type AnalysisResult struct {
	DamageType      string          `json:"damage_type"`
	ConfidenceScore float64         `json:"confidence_score"`
	RiskScore       int             `json:"risk_score"`
	Severity        models.Severity `json:"severity"`
	Explanation     string          `json:"explanation"`
	NewHealthScore  int             `json:"new_health_score"`
}

// InterfaceAIService defines the AI analysis service interface
type InterfaceAIService interface {
	SimulateAnalysis(assetType models.AssetType) AnalysisResult
}

// AIService 模拟AI损伤检测。系统中唯一的非确定性来源在此，
// 随机源可注入以便测试复现。
type AIService struct {
	risk InterfaceRiskService
	rng  *rand.Rand
	mu   sync.Mutex // math/rand.Rand 非并发安全
}

// NewAIService 创建一个新的AI分析服务，随机源按时间和安全随机数播种
func NewAIService(riskService InterfaceRiskService) InterfaceAIService {
	seed := time.Now().UnixNano() ^ int64(utils.RandomInt32())
	return NewAIServiceWithSource(riskService, rand.NewSource(seed))
}

// NewAIServiceWithSource 创建使用指定随机源的AI分析服务
func NewAIServiceWithSource(riskService InterfaceRiskService, src rand.Source) InterfaceAIService {
	return &AIService{
		risk: riskService,
		rng:  rand.New(src),
	}
}

// 1 SimulateAnalysis 对指定类别的资产生成一次模拟损伤检测结果
// 置信度取 [70, 98] 均匀分布保留一位小数，风险评分取 floor(30 + U*65)，
// 新健康评分为 max(0, 100 - riskScore)
func (s *AIService) SimulateAnalysis(assetType models.AssetType) AnalysisResult {
	types, ok := damageTypes[assetType]
	if !ok {
		// 未知类别回退到道路档案
		types = damageTypes[models.AssetTypeRoad]
	}

	s.mu.Lock()
	damage := types[s.rng.Intn(len(types))]
	confidenceScore := math.Round((70+s.rng.Float64()*28)*10) / 10
	riskScore := int(math.Floor(30 + s.rng.Float64()*65))
	explanation := damage.Explanations[s.rng.Intn(len(damage.Explanations))]
	s.mu.Unlock()

	newHealthScore := 100 - riskScore
	if newHealthScore < 0 {
		newHealthScore = 0
	}

	return AnalysisResult{
		DamageType:      damage.Type,
		ConfidenceScore: confidenceScore,
		RiskScore:       riskScore,
		Severity:        s.risk.DetermineSeverity(riskScore),
		Explanation:     explanation,
		NewHealthScore:  newHealthScore,
	}
}
