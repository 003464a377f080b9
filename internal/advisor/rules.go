package advisor

import "fjacquet/accountbook/internal/models"

func rule(c models.Category, keywords ...string) models.KeywordRule {
	return models.KeywordRule{Category: c, Keywords: keywords}
}

// defaultRules are checked in order; the first match wins.
var defaultRules = []models.KeywordRule{
	rule(models.ExpenseOf(models.ExpenseFood), "밥", "음식", "카페", "식당", "치킨", "restaurant", "cafe", "coffee", "lunch", "dinner", "grocery"),
	rule(models.ExpenseOf(models.ExpenseTransport), "버스", "택시", "지하철", "주유", "교통", "bus", "taxi", "subway", "metro", "fuel", "train"),
	rule(models.ExpenseOf(models.ExpenseShopping), "옷", "쇼핑", "구매", "clothes", "shopping", "purchase"),
	rule(models.ExpenseOf(models.ExpenseEntertainment), "영화", "게임", "여행", "놀이", "movie", "cinema", "game", "travel", "concert"),
	rule(models.ExpenseOf(models.ExpenseHealth), "병원", "약국", "건강", "의료", "hospital", "pharmacy", "clinic", "doctor"),
	rule(models.ExpenseOf(models.ExpenseEducation), "책", "학원", "강의", "교육", "book", "course", "lecture", "tuition"),
	rule(models.ExpenseOf(models.ExpenseUtilities), "전기", "수도", "가스", "관리비", "electricity", "water bill", "gas bill", "internet"),
	rule(models.ExpenseOf(models.ExpenseHousing), "월세", "전세", "집", "rent", "mortgage"),

	rule(models.IncomeOf(models.IncomeSalary), "월급", "급여", "연봉", "salary", "payroll", "wage"),
	rule(models.IncomeOf(models.IncomeBonus), "보너스", "상여", "bonus"),
	rule(models.IncomeOf(models.IncomeBusiness), "사업", "매출", "business", "sales", "revenue"),
	rule(models.IncomeOf(models.IncomeInvestment), "주식", "배당", "이자", "투자", "stock", "dividend", "interest", "investment"),
	rule(models.IncomeOf(models.IncomeAllowance), "용돈", "선물", "allowance", "gift"),
	rule(models.IncomeOf(models.IncomeSideJob), "부업", "알바", "프리랜서", "side job", "freelance", "part-time"),
	rule(models.IncomeOf(models.IncomeRefund), "환급", "세금", "refund", "tax"),
}
