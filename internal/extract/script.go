package extract

// snapshotJS collects the raw font data of the loaded page: every distinct
// computed font-family value and the family/src pair of each readable
// @font-face rule. Cross-origin stylesheets throw on cssRules and are skipped.
const snapshotJS = `
(() => {
	const families = new Set();
	document.querySelectorAll('*').forEach(el => {
		const value = window.getComputedStyle(el).fontFamily;
		if (value) families.add(value);
	});

	const fontFaces = [];
	for (const sheet of document.styleSheets) {
		let rules;
		try {
			rules = sheet.cssRules || sheet.rules;
		} catch (e) {
			continue;
		}
		if (!rules) continue;
		for (const rule of rules) {
			if (rule.type !== CSSRule.FONT_FACE_RULE) continue;
			fontFaces.push({
				family: rule.style.fontFamily || '',
				src: rule.style.getPropertyValue('src') || ''
			});
		}
	}

	return JSON.stringify({
		families: Array.from(families),
		fontFaces: fontFaces
	});
})()
`
