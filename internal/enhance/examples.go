package enhance

import "github.com/coxaiservices-dotcom/llm-chain-of-thought-optimizer/internal/intent"

// Examples returns a sample prompt per type, for demo and help output
func Examples() map[intent.Type]string {
	return map[intent.Type]string{
		intent.TypeMath:        "Calculate the compound interest on $5000 at 3% annually for 8 years",
		intent.TypeCoding:      "Write a Python function to find the longest palindrome in a string",
		intent.TypeAnalysis:    "Analyze the pros and cons of remote work for software teams",
		intent.TypeDecision:    "Should I invest in stocks or bonds for retirement savings?",
		intent.TypeProblem:     "Troubleshoot why my laptop overheats under load",
		intent.TypeCreative:    "Write a story about an AI that learns to paint",
		intent.TypeExplanation: "Explain how neural networks learn from data",
		intent.TypeGeneral:     "Give me advice on starting a vegetable garden",
	}
}
