package compose

import (
	"fmt"
	"strings"

	"assistant-srv/internal/model"
	"assistant-srv/pkg/locale"
)

// phrases is the deterministic template set for one language. Every situation
// the composer can be asked about has an entry, so a reply always exists even
// with the generative backend down.
type phrases struct {
	resultsExcellent string // %d = match count
	resultsGood      string // %d = match count

	clarifyIntro   string // %d total, %d matched
	clarifyUnmet   string // %s = joined criteria
	suggestBroaden string
	suggestNumber  string
	suggestBudget  string

	askIntro        string
	frustratedIntro string
	collectedIntro  string

	offerIntro    string
	offerQuestion string

	completed string // %s = reference id
	reAsk     string

	chatFallback string
	failure      string
}

var phrasebook = map[string]phrases{
	locale.VI: {
		resultsExcellent: "Tôi tìm được %d tin rất khớp với yêu cầu của bạn:",
		resultsGood:      "Tôi tìm được %d tin phù hợp với yêu cầu của bạn:",
		clarifyIntro:     "Tôi tìm thấy %d tin nhưng chỉ %d tin thực sự khớp yêu cầu, nên tôi chưa muốn gửi kết quả chưa đúng cho bạn.",
		clarifyUnmet:     "Các tiêu chí chưa khớp: %s.",
		suggestBroaden:   "Bạn có thể mở rộng khu vực tìm kiếm",
		suggestNumber:    "cho tôi số phòng ngủ cụ thể",
		suggestBudget:    "hoặc cho tôi khoảng ngân sách",
		askIntro:         "Để đăng tin, tôi cần thêm vài thông tin:",
		frustratedIntro:  "Xin lỗi vì tôi đã hiểu chưa đúng. Đây là những gì tôi đã ghi nhận:",
		collectedIntro:   "Thông tin đã thu thập:",
		offerIntro:       "Tôi đã có đủ thông tin cho tin đăng:",
		offerQuestion:    "Bạn muốn đăng tin ngay bây giờ chứ?",
		completed:        "Tin của bạn đã được đăng thành công. Mã tham chiếu: %s.",
		reAsk:            "Bạn xác nhận đăng tin ngay bây giờ chứ? Trả lời \"có\" để đăng, hoặc bổ sung thông tin nếu muốn chỉnh sửa.",
		chatFallback:     "Tôi là trợ lý bất động sản, có thể giúp bạn tìm nhà hoặc đăng tin. Bạn cần gì ạ?",
		failure:          "Xin lỗi, hệ thống đang gặp sự cố. Bạn vui lòng thử lại sau ít phút nhé.",
	},
	locale.EN: {
		resultsExcellent: "I found %d listings that match your requirements very well:",
		resultsGood:      "I found %d listings that fit your requirements:",
		clarifyIntro:     "I found %d listings but only %d actually match your requirements, so I'd rather not send you results that aren't right.",
		clarifyUnmet:     "Criteria not met yet: %s.",
		suggestBroaden:   "You could broaden the search area",
		suggestNumber:    "give me an exact number of bedrooms",
		suggestBudget:    "or share your budget range",
		askIntro:         "To post your listing I need a bit more information:",
		frustratedIntro:  "Sorry, I got that wrong. Here is what I have understood so far:",
		collectedIntro:   "Collected so far:",
		offerIntro:       "I have everything needed for your listing:",
		offerQuestion:    "Do you want to post it now?",
		completed:        "Your listing has been posted. Reference ID: %s.",
		reAsk:            "Just to confirm: post the listing now? Reply \"yes\" to post, or add details to adjust it.",
		chatFallback:     "I'm a property assistant. I can help you search for a home or post a listing. What do you need?",
		failure:          "Sorry, something went wrong on our side. Please try again in a few minutes.",
	},
	locale.TH: {
		resultsExcellent: "ฉันพบ %d ประกาศที่ตรงกับความต้องการของคุณมาก:",
		resultsGood:      "ฉันพบ %d ประกาศที่เหมาะกับความต้องการของคุณ:",
		clarifyIntro:     "ฉันพบ %d ประกาศ แต่มีเพียง %d รายการที่ตรงกับเงื่อนไขจริง ๆ จึงยังไม่อยากส่งผลลัพธ์ที่ไม่ตรงให้คุณ",
		clarifyUnmet:     "เงื่อนไขที่ยังไม่ตรง: %s",
		suggestBroaden:   "คุณอาจขยายพื้นที่ค้นหา",
		suggestNumber:    "บอกจำนวนห้องนอนที่แน่นอน",
		suggestBudget:    "หรือบอกงบประมาณของคุณ",
		askIntro:         "เพื่อลงประกาศ ฉันต้องการข้อมูลเพิ่มเติม:",
		frustratedIntro:  "ขอโทษที่เข้าใจผิด นี่คือข้อมูลที่ฉันบันทึกไว้:",
		collectedIntro:   "ข้อมูลที่เก็บแล้ว:",
		offerIntro:       "ฉันมีข้อมูลครบสำหรับประกาศของคุณแล้ว:",
		offerQuestion:    "ต้องการลงประกาศเลยไหม",
		completed:        "ลงประกาศเรียบร้อยแล้ว รหัสอ้างอิง: %s",
		reAsk:            "ยืนยันลงประกาศตอนนี้ไหม ตอบ \"ใช่\" เพื่อลงประกาศ หรือเพิ่มข้อมูลหากต้องการแก้ไข",
		chatFallback:     "ฉันเป็นผู้ช่วยอสังหาริมทรัพย์ ช่วยค้นหาบ้านหรือลงประกาศได้ คุณต้องการอะไร",
		failure:          "ขออภัย ระบบขัดข้อง กรุณาลองใหม่อีกครั้งในอีกสักครู่",
	},
	locale.JA: {
		resultsExcellent: "ご希望に非常によく合う物件が%d件見つかりました:",
		resultsGood:      "ご希望に合う物件が%d件見つかりました:",
		clarifyIntro:     "%d件見つかりましたが、条件に本当に合うのは%d件のみでした。合わない結果はお送りしたくありません。",
		clarifyUnmet:     "まだ合っていない条件: %s",
		suggestBroaden:   "エリアを広げてみる",
		suggestNumber:    "寝室数を具体的に教えていただく",
		suggestBudget:    "ご予算を教えていただく",
		askIntro:         "掲載のため、もう少し情報が必要です:",
		frustratedIntro:  "申し訳ありません、誤解していました。現在把握している内容はこちらです:",
		collectedIntro:   "収集済みの情報:",
		offerIntro:       "掲載に必要な情報が揃いました:",
		offerQuestion:    "今すぐ掲載しますか?",
		completed:        "掲載が完了しました。参照ID: %s",
		reAsk:            "今すぐ掲載してよろしいですか?「はい」で掲載、修正したい場合は情報を追加してください。",
		chatFallback:     "不動産アシスタントです。物件探しや掲載をお手伝いできます。ご用件をどうぞ。",
		failure:          "申し訳ありません、システムに問題が発生しました。しばらくしてからもう一度お試しください。",
	},
}

func phrasesFor(lang string) phrases {
	if p, ok := phrasebook[lang]; ok {
		return p
	}
	return phrasebook[locale.DefaultLang]
}

// fallbackResults renders the satisfied-search reply without the LLM.
func fallbackResults(input ResultsInput) string {
	p := phrasesFor(input.Language)

	var b strings.Builder
	if input.QualityScore >= ExcellentQuality {
		b.WriteString(fmt.Sprintf(p.resultsExcellent, input.MatchCount))
	} else {
		b.WriteString(fmt.Sprintf(p.resultsGood, input.MatchCount))
	}
	for i, r := range input.Results {
		if i >= 5 {
			break
		}
		b.WriteString(fmt.Sprintf("\n%d. %s - %s", i+1, r.Title, r.Location))
	}
	return b.String()
}

// fallbackClarification renders the honest low-quality reply without the LLM.
func fallbackClarification(input ClarificationInput) string {
	p := phrasesFor(input.Language)

	var b strings.Builder
	b.WriteString(fmt.Sprintf(p.clarifyIntro, input.TotalFound, input.MatchCount))
	if len(input.MissingCriteria) > 0 {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf(p.clarifyUnmet, strings.Join(input.MissingCriteria, ", ")))
	}
	b.WriteString("\n")
	b.WriteString(p.suggestBroaden + ", " + p.suggestNumber + ", " + p.suggestBudget + ".")
	return b.String()
}

// fallbackQuestions renders the elicitation follow-up without the LLM.
func fallbackQuestions(input QuestionsInput) string {
	p := phrasesFor(input.Language)

	var b strings.Builder
	if input.Frustrated {
		b.WriteString(p.frustratedIntro)
		writeCollected(&b, input.Collected)
		b.WriteString("\n")
	}
	b.WriteString(p.askIntro)
	for _, q := range input.Questions {
		b.WriteString("\n- " + q.Prompt)
	}
	return b.String()
}

// fallbackReAsk renders the frustrated confirmation re-ask without the LLM.
func fallbackReAsk(input ReAskInput) string {
	p := phrasesFor(input.Language)

	var b strings.Builder
	b.WriteString(p.frustratedIntro)
	writeCollected(&b, input.Collected)
	b.WriteString("\n")
	b.WriteString(p.reAsk)
	return b.String()
}

// fallbackOffer renders the ready-to-post summary without the LLM.
func fallbackOffer(input OfferInput) string {
	p := phrasesFor(input.Language)

	var b strings.Builder
	if input.Frustrated {
		b.WriteString(p.frustratedIntro)
		writeCollected(&b, input.Collected)
		b.WriteString("\n")
	}
	b.WriteString(p.offerIntro)
	for _, line := range input.Summary {
		b.WriteString("\n- " + line)
	}
	b.WriteString("\n")
	b.WriteString(p.offerQuestion)
	return b.String()
}

func writeCollected(b *strings.Builder, collected []model.FieldValue) {
	for _, fv := range collected {
		b.WriteString("\n- " + fv.Name + ": " + fv.Value)
	}
}
