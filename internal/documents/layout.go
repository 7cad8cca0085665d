package documents

// pageTemplate renders one document as a .page block. Sections and columns
// are switched per document kind by the view flags.
const pageTemplate = `<div class="page page-{{.Kind}}">
  <div class="header">
    <div class="header-left">
      {{if .Business.LogoURL}}<img src="{{.Business.LogoURL}}" alt="Company Logo" class="logo-image" />{{end}}
      <div class="business-info">
        <div class="business-name">{{.Business.BusinessName}}</div>
        <div class="business-address">{{.Business.BusinessAddress}}</div>
        <div class="business-city">{{.Business.BusinessCity}}</div>
        <div class="business-phone">Phone: {{.Business.BusinessPhone}}</div>
      </div>
    </div>
    <div class="header-right">
      <h1>{{.HeaderTitle}}</h1>
      <div class="order-info">
        <p><strong>Order:</strong> {{.OrderName}}</p>
        <p><strong>Date:</strong> {{.OrderDate}}</p>
      </div>
    </div>
  </div>

  {{if .Disclaimers}}
  <div class="disclaimers disclaimers-top">
    <p><strong>Valuation Basis:</strong> This appraisal represents estimated value based on current market conditions and our professional assessment. Values are dependent on current gold prices and market fluctuations.</p>
    <p><strong>No Liability:</strong> We assume no liability for actions taken based on this appraisal. This document is for informational purposes only and not a guarantee of value or purchase commitment.</p>
  </div>
  {{end}}

  <div class="customer-info">
    <h2>Customer Information</h2>
    <p><strong>Name:</strong> {{.CustomerName}}</p>
    {{if .Email}}<p><strong>Email:</strong> {{.Email}}</p>{{end}}
  </div>

  {{if and .ShowShipping .Address}}
  <div class="shipping-info">
    <h2>Shipping Address</h2>
    {{range .Address}}<p>{{.}}</p>
    {{end}}
  </div>
  {{end}}

  <div class="items">
    <h2>{{.ItemsHeading}}</h2>
    <table>
      <thead>
        <tr>
          {{if .ShowImages}}<th>Image</th>{{end}}
          <th>Item</th>
          {{if .ShowWeights}}<th>Weight</th>{{end}}
          <th>Quantity</th>
          {{if .ShowPrices}}<th>Unit Price</th>
          <th>Total</th>{{end}}
          {{if .ShowDescription}}<th>Description</th>{{end}}
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr>
          {{if $.ShowImages}}<td class="product-image-cell">{{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.ImageAlt}}" class="product-image" />{{else}}<div class="no-image">No Image</div>{{end}}</td>{{end}}
          <td>{{.Title}}</td>
          {{if $.ShowWeights}}<td>{{.Weight}}</td>{{end}}
          <td>{{.Quantity}}</td>
          {{if $.ShowPrices}}<td>${{.UnitPrice}}</td>
          <td>${{.LineTotal}}</td>{{end}}
          {{if $.ShowDescription}}<td>{{.Description}}</td>{{end}}
        </tr>
        {{end}}
      </tbody>
    </table>
  </div>

  {{if .ShowTotals}}
  <div class="totals">
    {{range .Totals}}
    <div class="totals-row{{if .Emphasis}} total-row{{end}}">
      <span class="label">{{.Label}}:</span>
      <span class="amount">{{if .Negative}}- {{end}}${{.Amount}}</span>
    </div>
    {{end}}
  </div>
  {{end}}

  {{if .Disclaimers}}
  <div class="disclaimers disclaimers-bottom">
    <p><strong>Purchase Policy:</strong> We do not guarantee to purchase items at appraised value. Purchase decisions are at our sole discretion and subject to verification and market conditions.</p>
    <p><strong>Professional Opinion:</strong> This represents our professional opinion based on visual inspection. Not certified for insurance, legal, or tax purposes without additional verification.</p>
  </div>
  {{end}}

  {{if .Signature}}
  <div class="signature-block">
    <p>Received in good condition by:</p>
    <div class="signature-line">
      <span class="signature-label">Signature</span>
      <span class="signature-label">Date</span>
    </div>
  </div>
  {{end}}

  <div class="footer">
    <p>Thank you for your business!</p>
    <p>For questions, please contact us at {{.Business.BusinessPhone}}</p>
  </div>
</div>
`

// layoutTemplate wraps the rendered pages in one printable HTML document;
// page-break-after makes the print dialog treat each .page as its own sheet
const layoutTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: Arial, sans-serif;
      margin: 0;
      padding: 20px;
      background: white;
      line-height: 1.5;
    }

    .page {
      margin-bottom: 30px;
      page-break-after: always;
      border: 1px solid #ddd;
      padding: 20px;
      min-height: 800px;
    }

    .page:last-child {
      page-break-after: avoid;
    }

    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid #333;
      padding-bottom: 10px;
      margin-bottom: 20px;
    }

    .header h1 {
      margin: 0 0 10px 0;
      color: #333;
    }

    .logo-image {
      max-height: 50px;
      max-width: 150px;
    }

    .business-name {
      font-weight: bold;
      font-size: 16px;
      color: #333;
    }

    .business-address, .business-city, .business-phone {
      font-size: 12px;
      color: #666;
      line-height: 1.3;
    }

    .order-info p {
      margin: 5px 0;
      text-align: right;
    }

    .customer-info, .shipping-info, .items {
      margin-bottom: 20px;
    }

    .customer-info h2, .shipping-info h2, .items h2 {
      color: #333;
      border-bottom: 1px solid #ccc;
      padding-bottom: 5px;
    }

    table {
      width: 100%;
      border-collapse: collapse;
      margin-top: 10px;
    }

    th, td {
      border: 1px solid #ddd;
      padding: 8px;
      text-align: left;
      font-size: 12px;
    }

    th {
      background-color: #f2f2f2;
      font-weight: bold;
    }

    .product-image-cell {
      width: 80px;
      text-align: center;
    }

    .product-image {
      width: 60px;
      height: 60px;
      object-fit: cover;
      border-radius: 4px;
    }

    .no-image {
      width: 60px;
      height: 60px;
      background-color: #f5f5f5;
      border: 1px dashed #ccc;
      display: flex;
      align-items: center;
      justify-content: center;
      font-size: 10px;
      color: #666;
      border-radius: 4px;
    }

    .totals {
      margin-top: 12px;
      border-top: 2px solid #333;
      padding-top: 8px;
    }

    .totals-row {
      display: flex;
      justify-content: space-between;
      margin-bottom: 8px;
      font-size: 14px;
    }

    .total-row {
      font-weight: bold;
      font-size: 16px;
      border-top: 1px solid #ddd;
      padding-top: 8px;
      margin-top: 8px;
    }

    .amount {
      text-align: right;
      font-weight: bold;
    }

    .disclaimers p {
      margin-bottom: 5px;
      font-size: 10px;
      line-height: 1.3;
      font-style: italic;
      color: #555;
    }

    .signature-block {
      margin-top: 40px;
    }

    .signature-line {
      display: flex;
      justify-content: space-between;
      margin-top: 40px;
      border-top: 1px solid #333;
      padding-top: 5px;
      width: 60%;
    }

    .signature-label {
      font-size: 11px;
      color: #666;
    }

    .footer {
      margin-top: 30px;
      text-align: center;
      font-style: italic;
      color: #666;
      border-top: 1px solid #ddd;
      padding-top: 8px;
      font-size: 11px;
    }

    @media print {
      body {
        margin: 0;
        padding: 0;
      }

      .page {
        border: none;
        margin: 0;
        padding: 20px;
      }
    }
  </style>
</head>
<body>
  {{range .Pages}}{{.}}{{end}}
</body>
</html>
`
