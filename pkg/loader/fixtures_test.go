//go:build unit || integration

package loader

const (
	appComponent = `import { Component } from '@angular/core';

@Component({
  selector: 'app-root',
  templateUrl: './app.component.html',
})
export class AppComponent {}
`
	appTemplate   = `<main><app-item [item]="current"></app-item></main>`
	itemComponent = `@Component({ selector: 'app-item', template: '<span>{{ item }}</span>' })
export class ItemComponent {
  @Input() item: string;
  @Output() removed = new EventEmitter<void>();
}
`
)
