package llm

import "fmt"

// The model is instructed to answer with bare JSON. Compliance is not
// guaranteed; extractJSON handles wrapped or prose-padded replies.
const promptTemplate = `请分析以下%s，提取快递/物流/验证码相关信息，严格以JSON格式返回，不要有其他内容：
{
  "type": "取件码" 或 "验证码" 或 "其他",
  "code": "提取的码（取件码或验证码），无则空字符串",
  "platform": "平台名称（如菜鸟、丰巢、顺丰等），无则null",
  "stationName": "驿站名称，无则null",
  "stationAddress": "驿站地址，无则null"
}`

// extractionPrompt builds the instruction prompt for a text input.
func extractionPrompt(text string) string {
	return fmt.Sprintf(promptTemplate, "文本") + "\n\n文本：" + text
}

// imageExtractionPrompt builds the instruction prompt accompanying an image.
func imageExtractionPrompt() string {
	return fmt.Sprintf(promptTemplate, "图片")
}
